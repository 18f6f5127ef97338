package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/middleware"
	"iso-rate-api/internal/service"
)

type RateHandler struct{ svc *service.RateService }

func NewRateHandler() *RateHandler { return &RateHandler{svc: service.NewRateService()} }

// Query GET /rates?partner_id=&brand=&modality=&channel=
func (h *RateHandler) Query(c *gin.Context) {
	var req dto.QueryRateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	triple, serr := h.svc.QueryRate(c.Request.Context(), req)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(triple))
}

// UpsertPartnerMargin PUT /links/:id/margins
func (h *RateHandler) UpsertPartnerMargin(c *gin.Context) {
	linkID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req dto.UpsertPartnerMarginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	if serr := h.svc.UpsertPartnerMargin(c.Request.Context(), linkID, req); serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(nil))
}

// UpsertPlatformMargin PUT /partners/:id/platform-margins
func (h *RateHandler) UpsertPlatformMargin(c *gin.Context) {
	partnerID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req dto.UpsertPlatformMarginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	if serr := h.svc.UpsertPlatformMargin(c.Request.Context(), partnerID, req); serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(nil))
}

// UpsertOverride PUT /links/:id/overrides
func (h *RateHandler) UpsertOverride(c *gin.Context) {
	linkID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req dto.UpsertOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	if serr := h.svc.UpsertOverride(c.Request.Context(), linkID, middleware.Actor(c), req); serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(nil))
}

// RevertOverride POST /links/:id/overrides/revert
func (h *RateHandler) RevertOverride(c *gin.Context) {
	linkID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req dto.RevertOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	if serr := h.svc.RevertOverride(c.Request.Context(), linkID, middleware.Actor(c), req); serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(nil))
}

// ImportCandidates POST /rate-tables/import
func (h *RateHandler) ImportCandidates(c *gin.Context) {
	var req dto.ImportCandidatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	resp, serr := h.svc.ImportCandidates(middleware.Actor(c), req)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(resp))
}

// statusFor maps error kinds onto HTTP statuses for every handler.
func statusFor(err constant.Error) int {
	switch err.Kind() {
	case constant.KindAuthorization:
		return http.StatusForbidden
	case constant.KindValidation, constant.KindInvalidTransition:
		return http.StatusUnprocessableEntity
	case constant.KindNotFound:
		return http.StatusNotFound
	case constant.KindConflict:
		return http.StatusConflict
	case constant.KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
