package middleware

import (
	"github.com/gin-gonic/gin"

	"iso-rate-api/internal/constant"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(500, constant.Fail(constant.NewError(constant.CodeSystemError)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
