package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/billing/internal/entity"
)

func TestNewPayment(t *testing.T) {
	t.Parallel()

	now := time.Now()
	bill := entity.Bill{ID: 4, Amount: decimal.RequireFromString("120.75")}

	p := entity.NewPayment(bill, 2, now)

	require.Equal(t, int64(4), p.BillID)
	require.Equal(t, int64(2), p.PaySystemID)
	require.Equal(t, now, p.CreatedAt)
	require.True(t, p.AmountTotal.Equal(bill.Amount))
	require.True(t, p.AmountProvider.Equal(bill.Amount))
	require.True(t, p.AmountFee.IsZero())
	require.Equal(t, entity.PaymentStatusPending, p.Status)
	require.Equal(t, entity.PaymentStatusPending, p.Outcome())
	require.NoError(t, p.Validate())
}

func TestPayment_Validate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		total    string
		provider string
		fee      string
		status   entity.PaymentStatus
		wantErr  bool
	}{
		{name: "no fee", total: "100", provider: "100", fee: "0", status: entity.PaymentStatusPending},
		{name: "with fee", total: "101.50", provider: "100", fee: "1.5", status: entity.PaymentStatusPaid},
		{name: "broken breakdown", total: "100", provider: "99", fee: "0", status: entity.PaymentStatusPending, wantErr: true},
		{name: "negative fee", total: "99", provider: "100", fee: "-1", status: entity.PaymentStatusPending, wantErr: true},
		{name: "unknown status", total: "1", provider: "1", fee: "0", status: "refunded", wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := entity.Payment{
				AmountTotal:    decimal.RequireFromString(tt.total),
				AmountProvider: decimal.RequireFromString(tt.provider),
				AmountFee:      decimal.RequireFromString(tt.fee),
				Status:         tt.status,
			}

			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, entity.ErrInvalidArgument))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPayment_Outcome(t *testing.T) {
	t.Parallel()

	at := time.Now()

	settled := entity.Payment{Status: entity.PaymentStatusPending}
	settled.Settle(at)
	require.Equal(t, entity.PaymentStatusPaid, settled.Outcome())
	require.Equal(t, entity.PaymentStatusPaid, settled.Status)
	require.Equal(t, at, *settled.PaidAt)

	failed := entity.Payment{Status: entity.PaymentStatusPending}
	failed.Fail()
	require.Equal(t, entity.PaymentStatusFailed, failed.Outcome())
	require.Nil(t, failed.PaidAt)
}
