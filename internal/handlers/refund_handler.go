package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
)

type RefundService interface {
	Create(ctx context.Context, req *dto.CreateRefund) (*models.Refund, error)
	Approve(ctx context.Context, refundID, approverID, message string) (*models.Refund, error)
	Decline(ctx context.Context, refundID, approverID, message string) (*models.Refund, error)
	ByID(ctx context.Context, refundID string) (*models.Refund, error)
	All(ctx context.Context) ([]models.Refund, error)
	ByPayment(ctx context.Context, paymentID string) ([]models.Refund, error)
	ByStatus(ctx context.Context, status models.RefundStatus) ([]models.Refund, error)
}

type RefundHandler struct {
	Service RefundService
}

func NewRefundHandler(s RefundService) *RefundHandler {
	return &RefundHandler{Service: s}
}

// POST /refunds
func (h *RefundHandler) CreateRefund(c *gin.Context) {
	var req dto.CreateRefund
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	refund, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, refund)
}

type resolveRefundRequest struct {
	ApproverID string `json:"approver_id"`
	Message    string `json:"message,omitempty"`
}

// POST /refunds/:id/approve
func (h *RefundHandler) ApproveRefund(c *gin.Context) {
	var req resolveRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	refund, err := h.Service.Approve(c.Request.Context(), c.Param("id"), req.ApproverID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, refund)
}

// POST /refunds/:id/decline
func (h *RefundHandler) DeclineRefund(c *gin.Context) {
	var req resolveRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	refund, err := h.Service.Decline(c.Request.Context(), c.Param("id"), req.ApproverID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, refund)
}

// GET /refunds/:id
func (h *RefundHandler) GetRefund(c *gin.Context) {
	refund, err := h.Service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, refund)
}

// GET /refunds
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		refunds, err := h.Service.ByStatus(c.Request.Context(), models.RefundStatus(status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, refunds)
		return
	}

	refunds, err := h.Service.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, refunds)
}

// GET /payments/:id/refunds
func (h *RefundHandler) GetPaymentRefunds(c *gin.Context) {
	refunds, err := h.Service.ByPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, refunds)
}
