package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
)

type NotificationHandler struct{ notifyDao *dao.NotificationDao }

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{notifyDao: dao.NewNotificationDao()}
}

// List GET /partners/:id/notifications?unread=1
func (h *NotificationHandler) List(c *gin.Context) {
	partnerID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	onlyUnread := c.Query("unread") == "1"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.notifyDao.ListByPartner(partnerID, onlyUnread, limit)
	if err != nil {
		c.JSON(500, constant.Fail(constant.NewError(constant.CodeDBError)))
		return
	}
	out := make([]dto.NotificationVO, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.NotificationVO{
			ID: n.ID, PartnerID: n.PartnerID, Type: n.Type, Title: n.Title,
			Message: n.Message, LinkedEntityID: n.LinkedEntityID, IsRead: n.IsRead, CreatedAt: n.CreatedAt,
		})
	}
	c.JSON(200, constant.OK(gin.H{"total": len(out), "list": out}))
}

// MarkRead POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	ok, err := h.notifyDao.MarkRead(id)
	if err != nil {
		c.JSON(500, constant.Fail(constant.NewError(constant.CodeDBError)))
		return
	}
	c.JSON(200, constant.OK(gin.H{"updated": ok}))
}
