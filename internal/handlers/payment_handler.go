package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/openpago/payments-core/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	Create(ctx context.Context, req *dto.CreatePayment) (*models.Payment, error)
	SelectMethod(ctx context.Context, paymentID string, spec dto.MethodSpec) (*models.Payment, error)
	Confirm(ctx context.Context, paymentID string) (*models.Payment, error)
	Cancel(ctx context.Context, paymentID, reason, actor string) (*models.Payment, error)
	Expire(ctx context.Context, paymentID string) (*models.Payment, error)
	RetryAfterBalanceRejection(ctx context.Context, paymentID, payerID string) (*models.Payment, error)
	ByID(ctx context.Context, paymentID string) (*models.Payment, error)
	Search(ctx context.Context, filter dto.PaymentFilter) ([]models.Payment, error)
	EventsFor(ctx context.Context, paymentID string) ([]models.PaymentEvent, error)
}

type AttemptReader interface {
	AttemptsFor(ctx context.Context, paymentID string) ([]models.PaymentAttempt, error)
}

type PaymentHandler struct {
	Service  PaymentService
	Attempts AttemptReader
}

func NewPaymentHandler(s PaymentService, attempts AttemptReader) *PaymentHandler {
	return &PaymentHandler{Service: s, Attempts: attempts}
}

// POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// PUT /payments/:id/method
func (h *PaymentHandler) SelectMethod(c *gin.Context) {
	var spec dto.MethodSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.SelectMethod(c.Request.Context(), c.Param("id"), spec)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// POST /payments/:id/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	payment, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrApprovalOutstanding) {
			c.JSON(http.StatusAccepted, gin.H{
				"payment": payment,
				"message": "bank approval outstanding",
			})
			return
		}
		var insufficient *models.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"payment": payment,
				"error":   insufficient.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// POST /payments/:id/cancel
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
		Actor  string `json:"actor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Actor == "" {
		req.Actor = models.ActorSystem
	}

	payment, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), req.Reason, req.Actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// POST /payments/:id/retry
func (h *PaymentHandler) RetryPayment(c *gin.Context) {
	var req struct {
		PayerID string `json:"payer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.RetryAfterBalanceRejection(c.Request.Context(), c.Param("id"), req.PayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /payments
func (h *PaymentHandler) SearchPayments(c *gin.Context) {
	filter := dto.PaymentFilter{
		PayerID:  c.Query("payer_id"),
		PayeeID:  c.Query("payee_id"),
		Status:   c.Query("status"),
		Currency: c.Query("currency"),
	}
	if v := c.Query("min_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_amount"})
			return
		}
		filter.MinAmount = &amount
	}
	if v := c.Query("max_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_amount"})
			return
		}
		filter.MaxAmount = &amount
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		filter.To = &to
	}

	payments, err := h.Service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /payments/:id/events
func (h *PaymentHandler) GetPaymentEvents(c *gin.Context) {
	events, err := h.Service.EventsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /payments/:id/attempts
func (h *PaymentHandler) GetPaymentAttempts(c *gin.Context) {
	attempts, err := h.Attempts.AttemptsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// HandleEvents dispatches messages from the subscribed topics.
func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PaymentExpireRequestedTopic:
		var event models.PaymentExpireRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing expire request event %s", err.Error())
			return fmt.Errorf("error parsing expire request event %w", err)
		}
		if _, err := h.Service.Expire(ctx, event.PaymentID); err != nil {
			return fmt.Errorf("error expiring payment %s: %w", event.PaymentID, err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
