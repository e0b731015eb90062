package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

// EnrichBill returns a copy of the bill with its service account and the account's
// provider joined. A bill whose account is gone comes back without the join.
func (s *Service) EnrichBill(bill entity.Bill) entity.Bill {
	return enrichBill(s.view(), bill)
}

func enrichBill(v store.View, bill entity.Bill) entity.Bill {
	bill.ServiceAccount = nil

	sa, ok := v.ServiceAccount(bill.ServiceAccountID)
	if !ok {
		return bill
	}

	sa = joinProvider(v, sa)
	bill.ServiceAccount = &sa

	return bill
}

func (s *Service) Bill(id int64) (entity.Bill, error) {
	v := s.view()

	b, ok := v.Bill(id)
	if !ok {
		return entity.Bill{}, entity.NewNotFoundError(entity.EntityBill, id)
	}

	return enrichBill(v, b), nil
}

func (s *Service) BillsByServiceAccount(serviceAccountID int64) []entity.Bill {
	return s.bills(func(_ store.View, b entity.Bill) bool {
		return b.ServiceAccountID == serviceAccountID
	})
}

func (s *Service) BillsByProperty(propertyID int64) []entity.Bill {
	return s.bills(func(v store.View, b entity.Bill) bool {
		sa, ok := v.ServiceAccount(b.ServiceAccountID)
		return ok && sa.PropertyID == propertyID
	})
}

func (s *Service) PendingBills() []entity.Bill {
	return s.bills(func(_ store.View, b entity.Bill) bool {
		return !b.IsPaid()
	})
}

func (s *Service) PaidBills() []entity.Bill {
	return s.bills(func(_ store.View, b entity.Bill) bool {
		return b.IsPaid()
	})
}

// bills returns enriched bills in store order matching keep.
func (s *Service) bills(keep func(v store.View, b entity.Bill) bool) []entity.Bill {
	v := s.view()

	var out []entity.Bill

	for _, b := range v.Bills() {
		if keep(v, b) {
			out = append(out, enrichBill(v, b))
		}
	}

	return out
}

// AddBill takes in a bill issued by the billing cycle of a provider.
func (s *Service) AddBill(ctx context.Context, serviceAccountID int64, bill entity.Bill) (entity.Bill, error) {
	bill.ID = 0
	bill.ServiceAccountID = serviceAccountID
	bill.ServiceAccount = nil

	err := s.validateStruct(bill)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("validate bill: %w", err)
	}

	var created entity.Bill

	_, err = s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		created, err = tx.CreateBill(bill)

		return err
	})
	if err != nil {
		return entity.Bill{}, fmt.Errorf("create bill for service account %d: %w", serviceAccountID, err)
	}

	slog.InfoContext(ctx, "bill added",
		slog.Int64("bill_id", created.ID),
		slog.Int64("service_account_id", serviceAccountID),
		slog.String("amount", created.Amount.String()))

	return created, nil
}
