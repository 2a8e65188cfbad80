package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openpago/payments-core/internal/handlers"
	"github.com/openpago/payments-core/internal/handlers/mocks"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/models/dto"
	"github.com/openpago/payments-core/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(h *handlers.PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payments", h.CreatePayment)
	r.PUT("/payments/:id/method", h.SelectMethod)
	r.POST("/payments/:id/confirm", h.ConfirmPayment)
	r.POST("/payments/:id/cancel", h.CancelPayment)
	r.POST("/payments/:id/retry", h.RetryPayment)
	r.GET("/payments/:id", h.GetPayment)
	r.GET("/payments/:id/attempts", h.GetPaymentAttempts)
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePayment_Returns201(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	payment := &models.Payment{ID: "payment-123", Status: models.StatusPendingPayment}
	mockService.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*dto.CreatePayment")).
		Return(payment, nil).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments", dto.CreatePayment{
		Subtotal: decimal.RequireFromString("80.00"),
		Taxes:    decimal.RequireFromString("10.00"),
		Fees:     decimal.RequireFromString("5.00"),
		Currency: "USD",
		PayerID:  "user_1",
		PayeeID:  "merchant_1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "payment-123", got.ID)
}

func TestCreatePayment_InvalidBody(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"subtotal":`))
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirmPayment_PendingApprovalReturns202(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	payment := &models.Payment{ID: "payment-123", Status: models.StatusPendingApproval}
	mockService.EXPECT().
		Confirm(mock.Anything, "payment-123").
		Return(payment, service.ErrApprovalOutstanding).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments/payment-123/confirm", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "bank approval outstanding")
}

func TestConfirmPayment_InsufficientBalanceReturns422(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	payment := &models.Payment{ID: "payment-123", Status: models.StatusRejected, RejectedByBalance: true}
	mockService.EXPECT().
		Confirm(mock.Anything, "payment-123").
		Return(payment, &models.InsufficientBalanceError{
			AccountID: "acc-1",
			Balance:   decimal.RequireFromString("50.00"),
			Required:  decimal.RequireFromString("95.00"),
		}).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments/payment-123/confirm", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "REJECTED")
}

func TestConfirmPayment_MethodRequiredReturns422(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	mockService.EXPECT().
		Confirm(mock.Anything, "payment-123").
		Return(nil, &models.MethodRequiredError{PaymentID: "payment-123"}).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments/payment-123/confirm", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetPayment_NotFoundReturns404(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	mockService.EXPECT().
		ByID(mock.Anything, "missing").
		Return(nil, &models.NotFoundError{Entity: "payment", ID: "missing"}).
		Once()

	w := performJSON(newRouter(h), http.MethodGet, "/payments/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelPayment_ConflictOnInvalidState(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	mockService.EXPECT().
		Cancel(mock.Anything, "payment-123", "changed my mind", "user_user_1").
		Return(nil, &models.InvalidStateError{Op: "cancel", Status: string(models.StatusApproved)}).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments/payment-123/cancel", gin.H{
		"reason": "changed my mind",
		"actor":  "user_user_1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRetryPayment_ForbiddenForWrongPayer(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	mockService.EXPECT().
		RetryAfterBalanceRejection(mock.Anything, "payment-123", "user_2").
		Return(nil, &models.UnauthorizedError{Subject: "user_2", Action: "retry payment payment-123"}).
		Once()

	w := performJSON(newRouter(h), http.MethodPost, "/payments/payment-123/retry", gin.H{
		"payer_id": "user_2",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetPaymentAttempts(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	mockAttempts.EXPECT().
		AttemptsFor(mock.Anything, "payment-123").
		Return([]models.PaymentAttempt{
			{PaymentID: "payment-123", Number: 2, Status: models.AttemptApproved},
			{PaymentID: "payment-123", Number: 1, Status: models.AttemptRejected},
		}, nil).
		Once()

	w := performJSON(newRouter(h), http.MethodGet, "/payments/payment-123/attempts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.PaymentAttempt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Number)
}

func TestHandleEvents_ExpireRequest(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	event := models.PaymentExpireRequestedEvent{PaymentID: "payment-123"}
	eventBytes, err := json.Marshal(event)
	require.NoError(t, err)

	ctx := context.Background()
	mockService.EXPECT().
		Expire(ctx, "payment-123").
		Return(&models.Payment{ID: "payment-123", Status: models.StatusExpired}, nil).
		Once()

	err = h.HandleEvents(ctx, models.PaymentExpireRequestedTopic, eventBytes)

	assert.NoError(t, err)
}

func TestHandleEvents_UnmarshalError(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	err := h.HandleEvents(context.Background(), models.PaymentExpireRequestedTopic, []byte(`{"invalid json`))

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything)
}

func TestHandleEvents_UnknownTopic(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	err := h.HandleEvents(context.Background(), "payments.unknown", []byte(`{}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "topic not allowed")
}

func TestHandleEvents_ServiceError(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	mockAttempts := mocks.NewMockAttemptReader(t)
	h := handlers.NewPaymentHandler(mockService, mockAttempts)

	event := models.PaymentExpireRequestedEvent{PaymentID: "payment-123"}
	eventBytes, err := json.Marshal(event)
	require.NoError(t, err)

	ctx := context.Background()
	expectedErr := errors.New("db down")
	mockService.EXPECT().Expire(ctx, "payment-123").Return(nil, expectedErr).Once()

	err = h.HandleEvents(ctx, models.PaymentExpireRequestedTopic, eventBytes)

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}
