package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/mocks"
	"github.com/samandr77/microservices/billing/internal/service"
	"github.com/samandr77/microservices/billing/internal/store"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	svc      *service.Service
	store    *store.Store
	producer *mocks.MockProducer
	locker   *mocks.MockLocker
	ref      *mocks.MockReferenceSource

	property entity.Property
	account  entity.ServiceAccount
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	st := store.New(store.WithClock(func() time.Time { return testNow }))
	t.Cleanup(st.Close)

	err := st.LoadReferenceData(store.ReferenceData{
		PropertyKinds: []entity.PropertyKind{{ID: 1, Title: "Apartment"}},
		Providers: []entity.Provider{
			{ID: 1, Title: "City Power", Active: true, Kind: entity.ProviderKindElectricity},
			{ID: 2, Title: "Aqua", Active: true, Kind: entity.ProviderKindWater},
		},
		PaySystems: []entity.PaySystem{{ID: 1, Title: "Card"}, {ID: 2, Title: "Bank transfer"}},
	})
	require.NoError(t, err)

	f := &fixture{
		store:    st,
		producer: mocks.NewMockProducer(ctrl),
		locker:   mocks.NewMockLocker(ctrl),
		ref:      mocks.NewMockReferenceSource(ctrl),
	}

	f.svc = service.New(st, f.producer, f.locker, f.ref, service.Options{DefaultPaySystemID: 1})

	f.property, err = f.svc.AddProperty(context.Background(), entity.Property{
		AddressText:    "Main st 1",
		PropertyKindID: 1,
		Data:           map[string]any{"name": "Home"},
	})
	require.NoError(t, err)

	f.account, err = f.svc.AddServiceAccount(context.Background(), f.property.ID, entity.ServiceAccount{
		ProviderID:    ptr(int64(1)),
		AccountNumber: "EL-001",
		BillingDay:    10,
		AccountType:   "electricity",
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) addBill(t *testing.T, accountID int64, amount int64) entity.Bill {
	t.Helper()

	b, err := f.svc.AddBill(context.Background(), accountID, entity.Bill{
		IssueDate: testNow.AddDate(0, 0, -10),
		DueDate:   ptr(testNow.AddDate(0, 0, 5)),
		Amount:    decimal.NewFromInt(amount),
	})
	require.NoError(t, err)

	return b
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_PayBill(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 150)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	require.True(t, f.svc.TotalDebt().Equal(decimal.NewFromInt(150)))

	payment, err := f.svc.PayBill(context.Background(), b1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, payment.Status)
	require.Equal(t, int64(1), payment.PaySystemID)
	require.True(t, payment.AmountTotal.Equal(decimal.NewFromInt(150)))
	require.True(t, payment.AmountFee.IsZero())

	got, err := f.svc.Bill(b1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.BillStatusPaid, got.Status())
	require.NotNil(t, got.PayedDate)
	require.Equal(t, testNow, *got.PayedDate)
	require.Equal(t, payment.ID, *got.PaymentID)
	require.True(t, f.svc.TotalDebt().IsZero())
}

func TestService_PayBillTwiceFails(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 150)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	first, err := f.svc.PayBill(context.Background(), b1.ID)
	require.NoError(t, err)

	_, err = f.svc.PayBill(context.Background(), b1.ID)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)

	got, err := f.svc.Bill(b1.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, *got.PaymentID)
}

func TestService_PayBillSettlesPendingPayment(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 80)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	pending, err := f.svc.CreatePayment(context.Background(), b1.ID, 2)
	require.NoError(t, err)

	paid, err := f.svc.PayBill(context.Background(), b1.ID)
	require.NoError(t, err)
	require.Equal(t, pending.ID, paid.ID)
	require.Equal(t, int64(2), paid.PaySystemID)

	history, err := f.svc.PaymentHistory("")
	require.NoError(t, err)
	require.Equal(t, 1, history.Total)
}

func TestService_PayBillVia(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 80)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	paid, err := f.svc.PayBillVia(context.Background(), b1.ID, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), paid.PaySystemID)

	_, err = f.svc.PayBillVia(context.Background(), b1.ID, 0)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_PayBillErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.PayBill(context.Background(), 404)
	require.ErrorIs(t, err, entity.ErrNotFound)

	b1 := f.addBill(t, f.account.ID, 10)

	_, err = f.svc.PayBillVia(context.Background(), b1.ID, 9)
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.Len(t, f.svc.PendingBills(), 1)
}

func TestService_PayAllBills(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.addBill(t, f.account.ID, 100)
	f.addBill(t, f.account.ID, 50)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(2)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	payments, err := f.svc.PayAllBills(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)

	paid := f.svc.PaidBills()
	require.Len(t, paid, 2)
	require.Equal(t, *paid[0].PayedDate, *paid[1].PayedDate)
	require.Empty(t, f.svc.PendingBills())
	require.True(t, f.svc.TotalDebt().IsZero())
}

func TestService_PayAllBillsNothingPending(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	payments, err := f.svc.PayAllBills(context.Background())
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestService_CreatePaymentKeepsBillPending(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 150)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)

	payment, err := f.svc.CreatePayment(context.Background(), b1.ID, 1)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPending, payment.Status)
	require.Nil(t, payment.Success)

	pending := f.svc.PendingBills()
	require.Len(t, pending, 1)
	require.Equal(t, b1.ID, pending[0].ID)
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 30)
	b2 := f.addBill(t, f.account.ID, 40)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(2)
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	p1, err := f.svc.CreatePayment(context.Background(), b1.ID, 1)
	require.NoError(t, err)

	p2, err := f.svc.CreatePayment(context.Background(), b2.ID, 1)
	require.NoError(t, err)

	confirmed, err := f.svc.ConfirmPayment(context.Background(), p1.ID, true)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, confirmed.Outcome())

	failed, err := f.svc.ConfirmPayment(context.Background(), p2.ID, false)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusFailed, failed.Outcome())

	pending := f.svc.PendingBills()
	require.Len(t, pending, 1)
	require.Equal(t, b2.ID, pending[0].ID)

	_, err = f.svc.ConfirmPayment(context.Background(), p1.ID, true)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)

	_, err = f.svc.ConfirmPayment(context.Background(), p2.ID, true)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	history, err := f.svc.PaymentHistory(entity.PaymentStatusFailed)
	require.NoError(t, err)
	require.Len(t, history.Records, 1)
	require.Equal(t, 2, history.Total)
	require.Equal(t, 1, history.Counts[entity.PaymentStatusPaid])
	require.Equal(t, 1, history.Counts[entity.PaymentStatusFailed])
}

func TestService_DeleteServiceAccount(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.addBill(t, f.account.ID, 10)
	f.addBill(t, f.account.ID, 20)

	require.Len(t, f.svc.BillsByServiceAccount(f.account.ID), 2)

	err := f.svc.DeleteServiceAccount(context.Background(), f.account.ID)
	require.NoError(t, err)
	require.Empty(t, f.svc.BillsByServiceAccount(f.account.ID))
	require.Empty(t, f.svc.PropertyServices(f.property.ID))

	err = f.svc.DeleteServiceAccount(context.Background(), f.account.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_DeletePropertyLeavesNoOrphans(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b := f.addBill(t, f.account.ID, 10)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).Times(1)

	_, err := f.svc.CreatePayment(context.Background(), b.ID, 1)
	require.NoError(t, err)

	err = f.svc.DeleteProperty(context.Background(), f.property.ID)
	require.NoError(t, err)

	require.Empty(t, f.svc.Properties())
	require.Empty(t, f.svc.PendingBills())
	require.Empty(t, f.svc.BillsByProperty(f.property.ID))

	history, err := f.svc.PaymentHistory("")
	require.NoError(t, err)
	require.Zero(t, history.Total)
	require.Empty(t, f.store.Export().Payments)
}

func TestService_PendingPaidPartition(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b1 := f.addBill(t, f.account.ID, 10)
	f.addBill(t, f.account.ID, 20)
	f.addBill(t, f.account.ID, 30)

	f.producer.EXPECT().SendPaymentCreated(gomock.Any(), gomock.Any()).AnyTimes()
	f.producer.EXPECT().SendBillPaid(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	_, err := f.svc.PayBill(context.Background(), b1.ID)
	require.NoError(t, err)

	pending := f.svc.PendingBills()
	paid := f.svc.PaidBills()
	require.Len(t, pending, 2)
	require.Len(t, paid, 1)

	debt := decimal.Zero
	for _, b := range pending {
		require.False(t, b.IsPaid())

		debt = debt.Add(b.Amount)
	}

	require.True(t, f.svc.TotalDebt().Equal(debt))
	require.True(t, debt.Equal(decimal.NewFromInt(50)))
}

func TestService_EnrichBill(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	b := f.addBill(t, f.account.ID, 10)

	enriched := f.svc.EnrichBill(b)
	require.NotNil(t, enriched.ServiceAccount)
	require.Equal(t, f.account.ID, enriched.ServiceAccount.ID)
	require.NotNil(t, enriched.ServiceAccount.Provider)
	require.Equal(t, "City Power", enriched.ServiceAccount.Provider.Title)
	require.Nil(t, b.ServiceAccount)

	require.Equal(t, enriched, f.svc.EnrichBill(enriched))

	orphan := f.svc.EnrichBill(entity.Bill{ID: 99, ServiceAccountID: 404})
	require.Nil(t, orphan.ServiceAccount)

	stored, err := f.svc.Bill(b.ID)
	require.NoError(t, err)
	require.Equal(t, enriched, stored)
}

func TestService_MonthlySpending(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	payedAt := func(month time.Month, day int) *time.Time {
		return ptr(time.Date(2024, month, day, 12, 0, 0, 0, time.UTC))
	}

	for _, b := range []entity.Bill{
		{IssueDate: testNow, Amount: decimal.NewFromInt(40), PayedDate: payedAt(time.March, 2)},
		{IssueDate: testNow, Amount: decimal.NewFromInt(10), PayedDate: payedAt(time.January, 20)},
		{IssueDate: testNow, Amount: decimal.NewFromInt(5), PayedDate: payedAt(time.March, 28)},
		{IssueDate: testNow, Amount: decimal.NewFromInt(999)},
	} {
		_, err := f.svc.AddBill(context.Background(), f.account.ID, b)
		require.NoError(t, err)
	}

	spending := f.svc.MonthlySpending()
	require.Len(t, spending, 2)
	require.Equal(t, "March 2024", spending[0].Month)
	require.True(t, spending[0].Amount.Equal(decimal.NewFromInt(45)))
	require.Equal(t, "January 2024", spending[1].Month)
	require.True(t, spending[1].Amount.Equal(decimal.NewFromInt(10)))

	entity.SortSpendingChronologically(spending)
	require.Equal(t, "January 2024", spending[0].Month)
}

func TestService_MonthlySpendingUsesLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := store.New()
	t.Cleanup(st.Close)

	err := st.LoadReferenceData(store.ReferenceData{PropertyKinds: []entity.PropertyKind{{ID: 1}}})
	require.NoError(t, err)

	loc := time.FixedZone("UTC+3", 3*60*60)
	svc := service.New(st, mocks.NewMockProducer(ctrl), nil, nil, service.Options{Location: loc})

	p, err := svc.AddProperty(context.Background(), entity.Property{PropertyKindID: 1})
	require.NoError(t, err)

	sa, err := svc.AddServiceAccount(context.Background(), p.ID, entity.ServiceAccount{BillingDay: 1})
	require.NoError(t, err)

	_, err = svc.AddBill(context.Background(), sa.ID, entity.Bill{
		IssueDate: testNow,
		Amount:    decimal.NewFromInt(7),
		PayedDate: ptr(time.Date(2024, time.January, 31, 22, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	spending := svc.MonthlySpending()
	require.Len(t, spending, 1)
	require.Equal(t, "February 2024", spending[0].Month)
}

func TestService_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.AddProperty(context.Background(), entity.Property{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = f.svc.AddProperty(context.Background(), entity.Property{PropertyKindID: 42})
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.svc.AddServiceAccount(context.Background(), f.property.ID, entity.ServiceAccount{BillingDay: 32})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "BillingDay", verr.Field)

	_, err = f.svc.AddServiceAccount(context.Background(), 404, entity.ServiceAccount{BillingDay: 1})
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.svc.AddBill(context.Background(), f.account.ID, entity.Bill{IssueDate: testNow, Amount: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = f.svc.AddBill(context.Background(), f.account.ID, entity.Bill{Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateProperty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	updated, err := f.svc.UpdateProperty(context.Background(), f.property.ID, entity.PropertyPatch{
		Commercial: ptr(true),
		Data:       map[string]any{"name": "Office"},
	})
	require.NoError(t, err)
	require.True(t, updated.Commercial)
	require.Equal(t, "Office", updated.Name())
	require.Equal(t, "Main st 1", updated.AddressText)

	_, err = f.svc.UpdateProperty(context.Background(), 404, entity.PropertyPatch{})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_UpdateServiceAccount(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	updated, err := f.svc.UpdateServiceAccount(context.Background(), f.account.ID, entity.ServiceAccountPatch{
		ProviderID: ptr(int64(2)),
		BillingDay: ptr(20),
	})
	require.NoError(t, err)
	require.Equal(t, 20, updated.BillingDay)
	require.Equal(t, int64(2), *updated.ProviderID)

	_, err = f.svc.UpdateServiceAccount(context.Background(), f.account.ID, entity.ServiceAccountPatch{
		PropertyID: ptr(int64(404)),
	})
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.svc.UpdateServiceAccount(context.Background(), 404, entity.ServiceAccountPatch{})
	require.ErrorIs(t, err, entity.ErrNotFound)

	services := f.svc.PropertyServices(f.property.ID)
	require.Len(t, services, 1)
	require.Equal(t, entity.ProviderKindWater, services[0].Provider.Kind)
}

func TestService_UpdatePropertyCopiesData(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	data := map[string]any{"name": "Cottage"}

	_, err := f.svc.UpdateProperty(context.Background(), f.property.ID, entity.PropertyPatch{Data: data})
	require.NoError(t, err)

	data["name"] = "Renamed by caller"

	properties := f.svc.Properties()
	require.Len(t, properties, 1)
	require.Equal(t, "Cottage", properties[0].Name())
}

func TestService_UpdateServiceAccountClearsProvider(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	updated, err := f.svc.UpdateServiceAccount(context.Background(), f.account.ID, entity.ServiceAccountPatch{
		ProviderID:    ptr(int64(2)),
		ClearProvider: true,
	})
	require.NoError(t, err)
	require.Nil(t, updated.ProviderID)

	services := f.svc.PropertyServices(f.property.ID)
	require.Len(t, services, 1)
	require.Nil(t, services[0].ProviderID)
	require.Nil(t, services[0].Provider)
}

func TestService_PropertyQueries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	other, err := f.svc.AddProperty(context.Background(), entity.Property{AddressText: "Second 2", PropertyKindID: 1})
	require.NoError(t, err)

	_, err = f.svc.AddServiceAccount(context.Background(), other.ID, entity.ServiceAccount{ProviderID: ptr(int64(2)), BillingDay: 3})
	require.NoError(t, err)

	_, err = f.svc.AddServiceAccount(context.Background(), other.ID, entity.ServiceAccount{ProviderID: ptr(int64(1)), BillingDay: 3})
	require.NoError(t, err)

	water, err := f.svc.PropertiesByProviderKind(entity.ProviderKindWater)
	require.NoError(t, err)
	require.Len(t, water, 1)
	require.Equal(t, other.ID, water[0].ID)

	all, err := f.svc.PropertiesByProviderKind(entity.ProviderKindAll)
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = f.svc.PropertiesByProviderKind("lava")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	counts := f.svc.ServiceCountsByKind()
	require.Equal(t, 2, counts[entity.ProviderKindElectricity])
	require.Equal(t, 1, counts[entity.ProviderKindWater])

	_, err = f.svc.GrantPermission(context.Background(), entity.PropertyPermission{
		PropertyID: other.ID,
		UserID:     "alice",
		Role:       entity.UserRoleTenant,
	})
	require.NoError(t, err)

	_, err = f.svc.GrantPermission(context.Background(), entity.PropertyPermission{
		PropertyID: f.property.ID,
		UserID:     "alice",
		Role:       entity.UserRoleFamily,
		Expire:     ptr(testNow.Add(-time.Hour)),
	})
	require.NoError(t, err)

	props := f.svc.UserProperties("alice")
	require.Len(t, props, 1)
	require.Equal(t, other.ID, props[0].ID)

	_, err = f.svc.GrantPermission(context.Background(), entity.PropertyPermission{PropertyID: other.ID, UserID: "bob", Role: "boss"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_NotifyOverdueBills(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.AddBill(context.Background(), f.account.ID, entity.Bill{
		IssueDate: testNow.AddDate(0, -1, 0),
		DueDate:   ptr(testNow.AddDate(0, 0, -1)),
		Amount:    decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	f.addBill(t, f.account.ID, 20)

	released := false

	f.locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), time.Minute).
		Return(func(context.Context) error { released = true; return nil }, nil)
	f.producer.EXPECT().SendBillOverdue(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, b entity.Bill) {
			require.True(t, b.Amount.Equal(decimal.NewFromInt(12)))
			require.NotNil(t, b.ServiceAccount)
		}).Times(1)

	err = f.svc.NotifyOverdueBills(context.Background())
	require.NoError(t, err)
	require.True(t, released)
}

func TestService_NotifyOverdueBillsLocked(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, entity.ErrLocked)

	err := f.svc.NotifyOverdueBills(context.Background())
	require.NoError(t, err)
}

func TestService_RefreshReferenceData(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.ref.EXPECT().ReferenceData(gomock.Any()).Return(store.ReferenceData{
		PropertyKinds: []entity.PropertyKind{{ID: 1, Title: "Apartment"}},
		Providers:     []entity.Provider{{ID: 1, Title: "City Power"}, {ID: 3, Title: "Gasco", Kind: entity.ProviderKindGas}},
		PaySystems:    []entity.PaySystem{{ID: 1, Title: "Card"}},
	}, nil)

	err := f.svc.RefreshReferenceData(context.Background())
	require.NoError(t, err)
	require.Len(t, f.svc.Providers(), 2)
	require.Len(t, f.svc.PaySystems(), 1)
}

func TestService_RefreshReferenceDataKeepsReferencedProviders(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.ref.EXPECT().ReferenceData(gomock.Any()).Return(store.ReferenceData{
		PropertyKinds: []entity.PropertyKind{{ID: 1, Title: "Apartment"}},
		Providers:     []entity.Provider{{ID: 2, Title: "Aqua", Kind: entity.ProviderKindWater}},
		PaySystems:    []entity.PaySystem{{ID: 1, Title: "Card"}},
	}, nil)

	err := f.svc.RefreshReferenceData(context.Background())
	require.ErrorIs(t, err, entity.ErrInvariantViolation)
	require.Len(t, f.svc.Providers(), 2)
}
