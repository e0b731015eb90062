package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

func (s BillStatus) String() string {
	return string(s)
}

// Bill is a single billing-cycle charge of a service account.
//
// PayedDate is the only source of paid-ness: a bill is paid iff it is set. Status is a
// projection of it and is written next to it wherever a bill leaves the process.
type Bill struct {
	ID               int64           `json:"id"`
	ServiceAccountID int64           `json:"service_account_id" validate:"gt=0"`
	IssueDate        time.Time       `json:"issue_date" validate:"required"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	Amount           decimal.Decimal `json:"amount" validate:"gte=0"`
	Details          map[string]any  `json:"details,omitempty"`
	PaymentID        *int64          `json:"payment_id,omitempty"`
	PayedDate        *time.Time      `json:"payed_date,omitempty"`

	// ServiceAccount is filled by the join layer and never stored.
	ServiceAccount *ServiceAccount `json:"service_account,omitempty" validate:"-"`
}

func (b Bill) IsPaid() bool {
	return b.PayedDate != nil
}

func (b Bill) Status() BillStatus {
	if b.IsPaid() {
		return BillStatusPaid
	}

	return BillStatusPending
}

// IsOverdue reports whether the bill is still pending after its due date.
func (b Bill) IsOverdue(now time.Time) bool {
	return !b.IsPaid() && b.DueDate != nil && b.DueDate.Before(now)
}

// MarkPaid settles the bill at the given instant. A paid bill is never changed again.
func (b *Bill) MarkPaid(at time.Time, paymentID int64) {
	if b.IsPaid() {
		return
	}

	b.PayedDate = &at
	b.PaymentID = &paymentID
}

// Reconcile folds an externally supplied status into PayedDate. A record marked "paid"
// without a settlement date is stamped with its issue date.
func (b *Bill) Reconcile(status BillStatus) {
	if status == BillStatusPaid && b.PayedDate == nil {
		at := b.IssueDate
		b.PayedDate = &at
	}
}

func (b Bill) MarshalJSON() ([]byte, error) {
	type alias Bill

	return json.Marshal(struct {
		alias
		Status BillStatus `json:"status"`
	}{
		alias:  alias(b),
		Status: b.Status(),
	})
}

func (b *Bill) UnmarshalJSON(data []byte) error {
	type alias Bill

	aux := struct {
		*alias
		Status BillStatus `json:"status"`
	}{
		alias: (*alias)(b),
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	b.Reconcile(aux.Status)

	return nil
}
