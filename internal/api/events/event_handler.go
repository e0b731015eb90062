package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/billing/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type Service interface {
	AddBill(ctx context.Context, serviceAccountID int64, bill entity.Bill) (entity.Bill, error)
	ConfirmPayment(ctx context.Context, paymentID int64, success bool) (entity.Payment, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnBillIssued takes in a bill record issued by a provider. The payload is the bill
// itself; a "paid" status without payed_date is reconciled on decode.
func (h *EventHandler) OnBillIssued(ctx context.Context, msg kafka.Message) error {
	var bill entity.Bill

	err := json.Unmarshal(msg.Value, &bill)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if bill.ServiceAccountID <= 0 {
		return fmt.Errorf("%w: bill without service_account_id", entity.ErrInvalidArgument)
	}

	_, err = h.s.AddBill(ctx, bill.ServiceAccountID, bill)
	if err != nil {
		return fmt.Errorf("add bill: %w", err)
	}

	return nil
}

type OnPaymentConfirmedEvent struct {
	PaymentID int64 `json:"payment_id"`
	Success   bool  `json:"success"`
}

// OnPaymentConfirmed applies a pay system outcome. Redelivered confirmations of an
// already settled payment are ignored.
func (h *EventHandler) OnPaymentConfirmed(ctx context.Context, msg kafka.Message) error {
	var event OnPaymentConfirmedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	_, err = h.s.ConfirmPayment(ctx, event.PaymentID, event.Success)
	if errors.Is(err, entity.ErrAlreadyPaid) {
		slog.InfoContext(ctx, "payment already settled", slog.Int64("payment_id", event.PaymentID))
		return nil
	}

	if err != nil {
		return fmt.Errorf("confirm payment %d: %w", event.PaymentID, err)
	}

	return nil
}
