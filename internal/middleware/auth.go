package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"iso-rate-api/internal/config"
	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dto"
)

type actorClaims struct {
	UID  uint64 `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthActor extracts the authenticated actor (id + role) from a Bearer
// JWT issued by the identity collaborator. The core only consumes the
// pair for transition gating.
func AuthActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(401, constant.Fail(constant.NewError(constant.CodeUnauthorized)))
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &actorClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.C.Security.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.UID == 0 {
			c.JSON(401, constant.Fail(constant.NewError(constant.CodeUnauthorized)))
			c.Abort()
			return
		}

		c.Set("actor", dto.Actor{ID: claims.UID, Role: claims.Role})
		c.Next()
	}
}

// Actor reads the identity set by AuthActor.
func Actor(c *gin.Context) dto.Actor {
	if v, ok := c.Get("actor"); ok {
		if a, ok := v.(dto.Actor); ok {
			return a
		}
	}
	return dto.Actor{}
}
