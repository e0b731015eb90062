package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, s)
	}
}

type Payment struct {
	ID             int64           `json:"id"`
	BillID         int64           `json:"bill_id"`
	PaySystemID    int64           `json:"paysystem_id"`
	CreatedAt      time.Time       `json:"create_date"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	AmountTotal    decimal.Decimal `json:"amount_total"`
	AmountProvider decimal.Decimal `json:"amount_provider"`
	AmountFee      decimal.Decimal `json:"amount_fee"`
	Status         PaymentStatus   `json:"status"`
	Success        *bool           `json:"success,omitempty"`
}

// NewPayment prepares a pending payment covering the whole bill amount without a fee.
func NewPayment(bill Bill, paySystemID int64, now time.Time) Payment {
	return Payment{
		BillID:         bill.ID,
		PaySystemID:    paySystemID,
		CreatedAt:      now,
		AmountTotal:    bill.Amount,
		AmountProvider: bill.Amount,
		AmountFee:      decimal.Zero,
		Status:         PaymentStatusPending,
	}
}

// Validate checks the amount breakdown: total = provider + fee, none negative.
func (p Payment) Validate() error {
	if p.AmountProvider.IsNegative() || p.AmountFee.IsNegative() {
		return fmt.Errorf("%w: payment amounts must not be negative", ErrInvalidArgument)
	}

	if !p.AmountTotal.Equal(p.AmountProvider.Add(p.AmountFee)) {
		return fmt.Errorf("%w: amount_total %s is not amount_provider %s + amount_fee %s",
			ErrInvalidArgument, p.AmountTotal, p.AmountProvider, p.AmountFee)
	}

	return p.Status.Validate()
}

func (p *Payment) Settle(at time.Time) {
	success := true
	p.Success = &success
	p.PaidAt = &at
	p.Status = PaymentStatusPaid
}

func (p *Payment) Fail() {
	success := false
	p.Success = &success
	p.Status = PaymentStatusFailed
}

// Outcome is the settlement outcome as reported by the pay system.
func (p Payment) Outcome() PaymentStatus {
	switch {
	case p.Success == nil:
		return PaymentStatusPending
	case *p.Success:
		return PaymentStatusPaid
	default:
		return PaymentStatusFailed
	}
}
