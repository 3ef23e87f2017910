package handler

import (
	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultPageSize = 20

// PayoutHandler serves the admin payout bill endpoints.
type PayoutHandler struct {
	payouts ports.PayoutService
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payouts ports.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// ListBills handles GET /admin/payout-bills.
func (h *PayoutHandler) ListBills(c *gin.Context) {
	var q dto.ListBillsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	params := ports.PayoutBillListParams{Page: q.Page, PageSize: q.PageSize}
	if q.StoreID != "" {
		id := uuid.MustParse(q.StoreID)
		params.StoreID = &id
	}
	if q.Status != "" {
		st := domain.PayoutBillStatus(q.Status)
		params.Status = &st
	}

	bills, total, err := h.payouts.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, bills, q.Page, q.PageSize, total)
}

// GetBill handles GET /admin/payout-bills/:id.
func (h *PayoutHandler) GetBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.payouts.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, detail)
}

// Review handles POST /admin/payout-bills/:id/review.
func (h *PayoutHandler) Review(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ReviewBillRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
	}

	bill, err := h.payouts.MoveBillToReview(c.Request.Context(), id, adminID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bill)
}

// MarkPaid handles POST /admin/payout-bills/:id/pay.
func (h *PayoutHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MarkBillPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bill, err := h.payouts.MarkBillAsPaid(c.Request.Context(), ports.MarkBillPaidRequest{
		BillID:            id,
		AdminID:           adminID,
		TransferReference: req.TransferReference,
		ReceiptImageURL:   req.ReceiptImageURL,
		AdminNote:         req.AdminNote,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bill)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
