package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

// settlement is one bill paid inside a transaction.
type settlement struct {
	bill    entity.Bill
	payment entity.Payment
	created bool
}

// CreatePayment registers a pending payment for the whole bill amount. The bill stays
// pending until the payment is settled.
func (s *Service) CreatePayment(ctx context.Context, billID, paySystemID int64) (entity.Payment, error) {
	var created entity.Payment

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		bill, ok := tx.Bill(billID)
		if !ok {
			return entity.NewNotFoundError(entity.EntityBill, billID)
		}

		if bill.IsPaid() {
			return fmt.Errorf("bill %d: %w", billID, entity.ErrAlreadyPaid)
		}

		var err error

		created, err = tx.CreatePayment(entity.NewPayment(bill, paySystemID, tx.Now()))

		return err
	})
	if err != nil {
		return entity.Payment{}, fmt.Errorf("create payment for bill %d: %w", billID, err)
	}

	slog.InfoContext(ctx, "payment created",
		slog.Int64("payment_id", created.ID),
		slog.Int64("bill_id", billID),
		slog.Int64("paysystem_id", paySystemID))

	s.producer.SendPaymentCreated(ctx, created)

	return created, nil
}

// PayBill settles the bill through its latest pending payment, or through a new payment
// of the default pay system when there is none.
func (s *Service) PayBill(ctx context.Context, billID int64) (entity.Payment, error) {
	return s.payBill(ctx, billID, 0)
}

// PayBillVia is PayBill with an explicit pay system.
func (s *Service) PayBillVia(ctx context.Context, billID, paySystemID int64) (entity.Payment, error) {
	if paySystemID <= 0 {
		return entity.Payment{}, &entity.ValidationError{Field: "PaySystemID", Rule: "gt"}
	}

	return s.payBill(ctx, billID, paySystemID)
}

func (s *Service) payBill(ctx context.Context, billID, paySystemID int64) (entity.Payment, error) {
	var done settlement

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		done, err = s.settle(tx, billID, paySystemID)

		return err
	})
	if err != nil {
		return entity.Payment{}, fmt.Errorf("pay bill %d: %w", billID, err)
	}

	s.publishSettlements(ctx, []settlement{done})

	return done.payment, nil
}

// PayAllBills settles every pending bill in one transaction. All of them share the
// same settlement instant.
func (s *Service) PayAllBills(ctx context.Context) ([]entity.Payment, error) {
	var done []settlement

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		done = done[:0]

		for _, bill := range tx.Bills() {
			if bill.IsPaid() {
				continue
			}

			st, err := s.settle(tx, bill.ID, 0)
			if err != nil {
				return err
			}

			done = append(done, st)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pay all bills: %w", err)
	}

	s.publishSettlements(ctx, done)

	payments := make([]entity.Payment, 0, len(done))
	for _, st := range done {
		payments = append(payments, st.payment)
	}

	return payments, nil
}

// ConfirmPayment records the outcome reported by a pay system. A successful payment
// settles its bill; a failed one leaves the bill pending.
func (s *Service) ConfirmPayment(ctx context.Context, paymentID int64, success bool) (entity.Payment, error) {
	var done settlement

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		payment, ok := tx.Payment(paymentID)
		if !ok {
			return entity.NewNotFoundError(entity.EntityPayment, paymentID)
		}

		switch payment.Status {
		case entity.PaymentStatusPaid:
			return fmt.Errorf("payment %d: %w", paymentID, entity.ErrAlreadyPaid)
		case entity.PaymentStatusFailed:
			return fmt.Errorf("%w: payment %d has already failed", entity.ErrInvalidArgument, paymentID)
		}

		bill, ok := tx.Bill(payment.BillID)
		if !ok {
			return entity.NewNotFoundError(entity.EntityBill, payment.BillID)
		}

		if !success {
			var err error

			done.payment, err = tx.UpdatePayment(paymentID, func(p *entity.Payment) error {
				p.Fail()
				return nil
			})

			return err
		}

		if bill.IsPaid() {
			return fmt.Errorf("bill %d: %w", bill.ID, entity.ErrAlreadyPaid)
		}

		var err error

		done, err = settlePayment(tx, bill, payment)

		return err
	})
	if err != nil {
		return entity.Payment{}, fmt.Errorf("confirm payment %d: %w", paymentID, err)
	}

	if success {
		s.publishSettlements(ctx, []settlement{done})
	} else {
		slog.InfoContext(ctx, "payment failed", slog.Int64("payment_id", paymentID))
	}

	return done.payment, nil
}

// settle pays one bill inside tx. A zero paySystemID picks any pending payment of the
// bill, falling back to the default pay system.
func (s *Service) settle(tx *store.Tx, billID, paySystemID int64) (settlement, error) {
	bill, ok := tx.Bill(billID)
	if !ok {
		return settlement{}, entity.NewNotFoundError(entity.EntityBill, billID)
	}

	if bill.IsPaid() {
		return settlement{}, fmt.Errorf("bill %d: %w", billID, entity.ErrAlreadyPaid)
	}

	payment, ok := latestPendingPayment(tx.View, billID, paySystemID)
	created := false

	if !ok {
		if paySystemID == 0 {
			paySystemID = s.opts.DefaultPaySystemID
		}

		var err error

		payment, err = tx.CreatePayment(entity.NewPayment(bill, paySystemID, tx.Now()))
		if err != nil {
			return settlement{}, err
		}

		created = true
	}

	st, err := settlePayment(tx, bill, payment)
	st.created = created

	return st, err
}

func settlePayment(tx *store.Tx, bill entity.Bill, payment entity.Payment) (settlement, error) {
	now := tx.Now()

	payment, err := tx.UpdatePayment(payment.ID, func(p *entity.Payment) error {
		p.Settle(now)
		return nil
	})
	if err != nil {
		return settlement{}, err
	}

	bill, err = tx.UpdateBill(bill.ID, func(b *entity.Bill) error {
		b.MarkPaid(now, payment.ID)
		return nil
	})
	if err != nil {
		return settlement{}, err
	}

	return settlement{bill: bill, payment: payment}, nil
}

func latestPendingPayment(v store.View, billID, paySystemID int64) (entity.Payment, bool) {
	var (
		found  entity.Payment
		exists bool
	)

	for _, p := range v.Payments() {
		if p.BillID != billID || p.Status != entity.PaymentStatusPending {
			continue
		}

		if paySystemID != 0 && p.PaySystemID != paySystemID {
			continue
		}

		if !exists || !p.CreatedAt.Before(found.CreatedAt) {
			found = p
			exists = true
		}
	}

	return found, exists
}

func (s *Service) publishSettlements(ctx context.Context, done []settlement) {
	for _, st := range done {
		slog.InfoContext(ctx, "bill paid",
			slog.Int64("bill_id", st.bill.ID),
			slog.Int64("payment_id", st.payment.ID),
			slog.String("amount", st.payment.AmountTotal.String()))

		if st.created {
			s.producer.SendPaymentCreated(ctx, st.payment)
		}

		s.producer.SendBillPaid(ctx, st.bill, st.payment)
	}
}
