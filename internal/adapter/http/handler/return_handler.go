package handler

import (
	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReturnHandler serves admin dispute resolution.
type ReturnHandler struct {
	returns ports.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(returns ports.ReturnService) *ReturnHandler {
	return &ReturnHandler{returns: returns}
}

// Resolve handles POST /admin/returns/:id/resolve.
func (h *ReturnHandler) Resolve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	actor := domain.Actor{Kind: domain.ActorAdmin, ID: adminID}
	r, err := h.returns.ResolveDispute(c.Request.Context(), id, actor, *req.InFavorOfCustomer, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}
