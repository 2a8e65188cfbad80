package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Business-rule failures are typed so callers can branch with errors.As and
// keep them distinct from storage or transport failures, which travel as
// plain wrapped errors.

type InvalidStateError struct {
	Op     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("operation %s not allowed in status %s", e.Op, e.Status)
}

type MethodRequiredError struct {
	PaymentID string
}

func (e *MethodRequiredError) Error() string {
	return fmt.Sprintf("payment %s has no payment method selected", e.PaymentID)
}

type NotConfirmableError struct {
	PaymentID string
	ByBalance bool
}

func (e *NotConfirmableError) Error() string {
	if e.ByBalance {
		return fmt.Sprintf("payment %s was rejected for insufficient balance; retry or select another method", e.PaymentID)
	}
	return fmt.Sprintf("payment %s was rejected and cannot be confirmed", e.PaymentID)
}

type InsufficientBalanceError struct {
	AccountID string
	Balance   decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %s: have %s, need %s",
		e.AccountID, e.Balance.StringFixed(2), e.Required.StringFixed(2))
}

const (
	MethodErrMissingField = "missing_field"
	MethodErrBinRejected  = "bin_rejected"
)

type InvalidMethodError struct {
	Code   string
	Reason string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid payment method (%s): %s", e.Code, e.Reason)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type UnauthorizedError struct {
	Subject string
	Action  string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s is not allowed to %s", e.Subject, e.Action)
}

type RefundLimitExceededError struct {
	PaymentID string
	Remaining decimal.Decimal
	Requested decimal.Decimal
}

func (e *RefundLimitExceededError) Error() string {
	return fmt.Sprintf("refund of %s exceeds remaining refundable amount %s on payment %s",
		e.Requested.StringFixed(2), e.Remaining.StringFixed(2), e.PaymentID)
}

type RetryLimitExceededError struct {
	PaymentID string
	Max       int
}

func (e *RetryLimitExceededError) Error() string {
	return fmt.Sprintf("payment %s reached the maximum of %d balance retries", e.PaymentID, e.Max)
}
