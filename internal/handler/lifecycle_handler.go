package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/middleware"
	"iso-rate-api/internal/service"
)

type LifecycleHandler struct{ svc *service.LifecycleService }

func NewLifecycleHandler() *LifecycleHandler {
	return &LifecycleHandler{svc: service.NewLifecycleService()}
}

// CreateNewVersion POST /rate-tables/:id/versions
func (h *LifecycleHandler) CreateNewVersion(c *gin.Context) {
	tableID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	resp, serr := h.svc.CreateNewVersion(tableID, middleware.Actor(c))
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(resp))
}

// Propagate POST /bindings/:id/propagate?version_id=
func (h *LifecycleHandler) Propagate(c *gin.Context) {
	bindingID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	versionID, err := strconv.ParseUint(c.Query("version_id"), 10, 64)
	if err != nil || versionID == 0 {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "version_id required")))
		return
	}
	notified, serr := h.svc.PropagateNewVersion(bindingID, versionID)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(gin.H{"notified": notified}))
}

// Sweep POST /lifecycle/sweep — manual replay of the scheduled pass.
func (h *LifecycleHandler) Sweep(c *gin.Context) {
	summary, serr := h.svc.SweepExpirations(c.Request.Context())
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(summary))
}
