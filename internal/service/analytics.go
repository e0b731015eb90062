package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/billing/internal/entity"
)

const monthLayout = "January 2006"

// MonthlySpending sums paid bills per calendar month of their settlement date.
// Buckets come in the order their month is first met while scanning the bills.
func (s *Service) MonthlySpending() []entity.MonthlySpending {
	var out []entity.MonthlySpending

	index := make(map[string]int)

	for _, b := range s.view().Bills() {
		if !b.IsPaid() {
			continue
		}

		at := b.PayedDate.In(s.opts.Location)
		key := at.Format(monthLayout)

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, entity.MonthlySpending{
				Month:  key,
				Period: time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, s.opts.Location),
				Amount: decimal.Zero,
			})
		}

		out[i].Amount = out[i].Amount.Add(b.Amount)
	}

	return out
}

// TotalDebt is the sum of all pending bills.
func (s *Service) TotalDebt() decimal.Decimal {
	total := decimal.Zero

	for _, b := range s.view().Bills() {
		if !b.IsPaid() {
			total = total.Add(b.Amount)
		}
	}

	return total
}

// PaymentHistory joins payments with their bills and accounts. An empty filter keeps
// every outcome; Counts always cover the unfiltered set.
func (s *Service) PaymentHistory(filter entity.PaymentStatus) (entity.PaymentHistory, error) {
	if filter != "" {
		err := filter.Validate()
		if err != nil {
			return entity.PaymentHistory{}, err
		}
	}

	v := s.view()

	history := entity.PaymentHistory{
		Counts: make(map[entity.PaymentStatus]int),
	}

	for _, p := range v.Payments() {
		bill, ok := v.Bill(p.BillID)
		if !ok {
			continue
		}

		sa, ok := v.ServiceAccount(bill.ServiceAccountID)
		if !ok {
			continue
		}

		outcome := p.Outcome()
		history.Counts[outcome]++
		history.Total++

		if filter != "" && outcome != filter {
			continue
		}

		history.Records = append(history.Records, entity.PaymentRecord{
			Payment:        p,
			Bill:           bill,
			ServiceAccount: joinProvider(v, sa),
		})
	}

	return history, nil
}
