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

type ContractHandler struct{ svc *service.ContractService }

func NewContractHandler() *ContractHandler {
	return &ContractHandler{svc: service.NewContractService()}
}

// Transition returns the handler for one state-machine action, wired
// as POST /links/:id/{submit,approve,reject,deactivate,reactivate}.
func (h *ContractHandler) Transition(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		linkID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

		var req dto.TransitionReq
		// body optional except for reject
		_ = c.ShouldBindJSON(&req)

		resp, serr := h.svc.Transition(linkID, action, middleware.Actor(c), req.Reason)
		if serr != nil {
			c.JSON(statusFor(serr), constant.Fail(serr))
			return
		}
		c.JSON(200, constant.OK(resp))
	}
}

// BindingTransition returns the handler for one state-machine action on
// a category binding, wired as
// POST /bindings/:id/{submit,approve,reject,deactivate,reactivate}.
func (h *ContractHandler) BindingTransition(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		bindingID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

		var req dto.TransitionReq
		// body optional except for reject
		_ = c.ShouldBindJSON(&req)

		resp, serr := h.svc.TransitionBinding(bindingID, action, middleware.Actor(c), req.Reason)
		if serr != nil {
			c.JSON(statusFor(serr), constant.Fail(serr))
			return
		}
		c.JSON(200, constant.OK(resp))
	}
}

// LinkPartner POST /partners/:id/links
func (h *ContractHandler) LinkPartner(c *gin.Context) {
	partnerID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req dto.LinkPartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constant.Fail(constant.NewErrorf(constant.CodeParamError, "%v", err)))
		return
	}
	resp, serr := h.svc.LinkPartner(partnerID, req)
	if serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(resp))
}

// UnlinkPartner DELETE /partners/:id/links/:linkId
func (h *ContractHandler) UnlinkPartner(c *gin.Context) {
	partnerID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	linkID, _ := strconv.ParseUint(c.Param("linkId"), 10, 64)
	if serr := h.svc.UnlinkPartner(partnerID, linkID); serr != nil {
		c.JSON(statusFor(serr), constant.Fail(serr))
		return
	}
	c.JSON(200, constant.OK(nil))
}
