package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/service"
)

type SettlementHandler struct{ svc *service.SettlementService }

func NewSettlementHandler() *SettlementHandler {
	return &SettlementHandler{svc: service.NewSettlementService()}
}

// Consolidate POST /settlements/consolidate {month, year}
func (h *SettlementHandler) Consolidate(c *gin.Context) {
	var req dto.PeriodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	summary, serr := h.svc.Consolidate(req.Month, req.Year)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(summary))
}

// ProcessAccumulation POST /settlements/process-accumulation {month, year}
func (h *SettlementHandler) ProcessAccumulation(c *gin.Context) {
	var req dto.PeriodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	summary, serr := h.svc.ProcessAccumulation(req.Month, req.Year)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(summary))
}
