package app

import handlers "github.com/openpago/payments-core/internal/handlers"

func (a *App) RegisterRoutes(p *handlers.PaymentHandler, r *handlers.RefundHandler) {
	payments := a.Router.Group("/payments")
	payments.POST("", p.CreatePayment)
	payments.GET("", p.SearchPayments)
	payments.GET("/:id", p.GetPayment)
	payments.PUT("/:id/method", p.SelectMethod)
	payments.POST("/:id/confirm", p.ConfirmPayment)
	payments.POST("/:id/cancel", p.CancelPayment)
	payments.POST("/:id/retry", p.RetryPayment)
	payments.GET("/:id/events", p.GetPaymentEvents)
	payments.GET("/:id/attempts", p.GetPaymentAttempts)
	payments.GET("/:id/refunds", r.GetPaymentRefunds)

	refunds := a.Router.Group("/refunds")
	refunds.POST("", r.CreateRefund)
	refunds.GET("", r.ListRefunds)
	refunds.GET("/:id", r.GetRefund)
	refunds.POST("/:id/approve", r.ApproveRefund)
	refunds.POST("/:id/decline", r.DeclineRefund)
}
