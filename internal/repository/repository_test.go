package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/repository"
	"github.com/samandr77/microservices/billing/internal/store"
	"github.com/samandr77/microservices/billing/pkg/postgres"
)

// The tests share one database and run sequentially.

func TestRepository_ApplyAndLoad(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	ref, err := repo.ReferenceData(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ref.PropertyKinds)
	require.NotEmpty(t, ref.Providers)
	require.NotEmpty(t, ref.PaySystems)

	st := store.New(store.WithClock(func() time.Time { return now }), store.WithCommitHook(repo.Apply))
	t.Cleanup(st.Close)

	require.NoError(t, st.LoadReferenceData(ref))

	var billID int64

	_, err = st.Update(ctx, func(tx *store.Tx) error {
		p, err := tx.CreateProperty(entity.Property{
			AddressText:    "Змај Јовина 15, Нови Сад 21000",
			Address:        &entity.Address{Street: "Змај Јовина", Number: "15", City: "Нови Сад", Postal: "21000"},
			PropertyKindID: ref.PropertyKinds[0].ID,
			Data:           map[string]any{"name": "Residence"},
		})
		if err != nil {
			return err
		}

		_, err = tx.GrantPermission(entity.PropertyPermission{PropertyID: p.ID, UserID: "u-1", Role: entity.UserRoleOwner})
		if err != nil {
			return err
		}

		sa, err := tx.CreateServiceAccount(entity.ServiceAccount{
			PropertyID:    p.ID,
			ProviderID:    &ref.Providers[0].ID,
			AccountNumber: "EV-22222",
			BillingDay:    1,
			AccountType:   "personal",
		})
		if err != nil {
			return err
		}

		b, err := tx.CreateBill(entity.Bill{
			ServiceAccountID: sa.ID,
			IssueDate:        now,
			Amount:           decimal.RequireFromString("120.75"),
		})
		if err != nil {
			return err
		}

		pay, err := tx.CreatePayment(entity.NewPayment(b, ref.PaySystems[0].ID, now))
		if err != nil {
			return err
		}

		_, err = tx.UpdatePayment(pay.ID, func(p *entity.Payment) error {
			p.Settle(now)
			return nil
		})
		if err != nil {
			return err
		}

		_, err = tx.UpdateBill(b.ID, func(b *entity.Bill) error {
			b.MarkPaid(now, pay.ID)
			return nil
		})

		billID = b.ID

		return err
	})
	require.NoError(t, err)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	want := st.Export()
	require.Equal(t, len(want.Properties), len(loaded.Properties))
	require.Equal(t, want.Properties[0].Data, loaded.Properties[0].Data)
	require.Equal(t, *want.Properties[0].Address, *loaded.Properties[0].Address)
	require.Len(t, loaded.Permissions, 1)
	require.Len(t, loaded.ServiceAccounts, 1)
	require.Len(t, loaded.Payments, 1)
	require.Equal(t, entity.PaymentStatusPaid, loaded.Payments[0].Status)

	require.Len(t, loaded.Bills, 1)
	require.Equal(t, billID, loaded.Bills[0].ID)
	require.True(t, loaded.Bills[0].IsPaid())
	require.True(t, loaded.Bills[0].Amount.Equal(decimal.RequireFromString("120.75")))

	// Cascading delete removes every row.
	_, err = st.Update(ctx, func(tx *store.Tx) error {
		return tx.DeleteProperty(want.Properties[0].ID)
	})
	require.NoError(t, err)

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded.Properties)
	require.Empty(t, loaded.Bills)
	require.Empty(t, loaded.Payments)
}

func TestRepository_ApplyFailureRollsBackStore(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	st := store.New(store.WithCommitHook(repo.Apply))
	t.Cleanup(st.Close)

	// Property kind 1000 is known to the store but not to the database.
	require.NoError(t, st.LoadReferenceData(store.ReferenceData{
		PropertyKinds: []entity.PropertyKind{{ID: 1000, Title: "Ghost"}},
	}))

	_, err := st.Update(ctx, func(tx *store.Tx) error {
		_, err := tx.CreateProperty(entity.Property{PropertyKindID: 1000})
		return err
	})
	require.Error(t, err)

	st.View(func(v store.View) {
		require.Empty(t, v.Properties())
	})
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	_, err := postgres.UpMigrations(context.Background(), dsn)
	require.NoError(t, err)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE payments, bills, service_accounts, property_permissions, properties`)
	require.NoError(t, err)

	return repository.New(pool)
}
