// Package fixtures holds the demo data set used when no database is configured.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

// Demo returns three properties in Serbia with seven service accounts and ten bills,
// seven of them paid. Every call builds a fresh snapshot.
func Demo() store.Snapshot {
	providersCreated := day(2024, time.January, 1)

	snap := store.Snapshot{
		PropertyKinds: []entity.PropertyKind{
			{ID: 1, Title: "Apartment"},
			{ID: 2, Title: "House"},
			{ID: 3, Title: "Commercial Building", Commercial: true},
			{ID: 4, Title: "Office", Commercial: true},
		},
		Properties: []entity.Property{
			{
				ID:          1,
				AddressText: "Булевар краља Александра 28, Београд 11000",
				Address: &entity.Address{
					Street: "Булевар краља Александра", Number: "28", City: "Београд", Postal: "11000",
				},
				PropertyKindID: 1,
				Data:           map[string]any{"name": "Belgrade City Apartments", "contractNumber": "BG-2024-001"},
			},
			{
				ID:          2,
				AddressText: "Змај Јовина 15, Нови Сад 21000",
				Address: &entity.Address{
					Street: "Змај Јовина", Number: "15", City: "Нови Сад", Postal: "21000",
				},
				PropertyKindID: 2,
				Data:           map[string]any{"name": "Novi Sad Residence", "contractNumber": "NS-2024-002"},
			},
			{
				ID:          3,
				AddressText: "Трг слободе 1, Суботица 24000",
				Address: &entity.Address{
					Street: "Трг слободе", Number: "1", City: "Суботица", Postal: "24000",
				},
				PropertyKindID: 2,
				Data:           map[string]any{"name": "Subotica House", "contractNumber": "SU-2024-003"},
			},
		},
		Providers: []entity.Provider{
			{ID: 1, Title: "Електропривреда Србије", Active: true, Created: providersCreated, Kind: entity.ProviderKindElectricity},
			{ID: 2, Title: "Београдски водовод", Active: true, Created: providersCreated, Kind: entity.ProviderKindWater},
			{ID: 3, Title: "Србијагас", Active: true, Created: providersCreated, Kind: entity.ProviderKindGas},
			{ID: 4, Title: "Електровојводина", Active: true, Created: providersCreated, Kind: entity.ProviderKindElectricity},
			{ID: 5, Title: "ЈКП Водовод и канализација Нови Сад", Active: true, Created: providersCreated, Kind: entity.ProviderKindWater},
			{ID: 6, Title: "Суботица Гас", Active: true, Created: providersCreated, Kind: entity.ProviderKindHeating},
			{ID: 7, Title: "ЈКП Водовод и канализација Суботица", Active: true, Created: providersCreated, Kind: entity.ProviderKindWater},
		},
		ServiceAccounts: []entity.ServiceAccount{
			account(1, 1, 1, "EPS-12345", "Main electricity meter", 15, false),
			account(2, 1, 2, "BVK-67890", "Water supply", 20, false),
			account(3, 1, 3, "SRB-11111", "Gas heating", 25, false),
			account(4, 2, 4, "EV-22222", "Electricity meter", 1, false),
			account(5, 2, 5, "VNS-33333", "Water supply", 5, false),
			account(6, 3, 6, "SUG-44444", "Heating system", 10, true),
			account(7, 3, 7, "VSU-55555", "Water and sewage", 12, false),
		},
		PaySystems: []entity.PaySystem{
			{ID: 1, Title: "Credit Card"},
			{ID: 2, Title: "Bank Transfer"},
			{ID: 3, Title: "PayPal"},
			{ID: 4, Title: "Crypto"},
		},
	}

	snap.Bills = []entity.Bill{
		bill(1, 1, day(2025, time.January, 15), "150.00"),
		bill(2, 2, day(2025, time.January, 20), "75.50"),
		paid(bill(3, 3, day(2024, time.December, 25), "95.25"), 1, at(2025, time.January, 25, 10, 30)),
		bill(4, 4, day(2025, time.February, 1), "120.75"),
		paid(bill(5, 5, day(2024, time.December, 5), "45.00"), 2, at(2025, time.January, 5, 15, 45)),
		paid(bill(6, 1, day(2024, time.November, 15), "142.50"), 3, at(2024, time.December, 16, 9, 30)),
		paid(bill(7, 2, day(2024, time.November, 20), "68.75"), 4, at(2024, time.December, 19, 14, 20)),
		paid(bill(8, 3, day(2024, time.October, 25), "88.90"), 5, at(2024, time.November, 24, 11, 15)),
		paid(bill(9, 4, day(2024, time.October, 1), "115.30"), 6, at(2024, time.November, 1, 8, 45)),
		paid(bill(10, 5, day(2024, time.September, 5), "42.80"), 7, at(2024, time.October, 5, 16, 30)),
	}

	// Every paid bill gets the card payment it points at.
	for _, b := range snap.Bills {
		if !b.IsPaid() {
			continue
		}

		p := entity.NewPayment(b, 1, *b.PayedDate)
		p.ID = *b.PaymentID
		p.Settle(*b.PayedDate)

		snap.Payments = append(snap.Payments, p)
	}

	return snap
}

func account(id, propertyID, providerID int64, number, description string, billingDay int, flatRate bool) entity.ServiceAccount {
	return entity.ServiceAccount{
		ID:            id,
		PropertyID:    propertyID,
		ProviderID:    &providerID,
		AccountNumber: number,
		Description:   description,
		BillingDay:    billingDay,
		FlatRate:      flatRate,
		AccountType:   "personal",
	}
}

// bill is due one month after issue.
func bill(id, accountID int64, issued time.Time, amount string) entity.Bill {
	due := issued.AddDate(0, 1, 0)

	return entity.Bill{
		ID:               id,
		ServiceAccountID: accountID,
		IssueDate:        issued,
		DueDate:          &due,
		Amount:           decimal.RequireFromString(amount),
	}
}

func paid(b entity.Bill, paymentID int64, payedAt time.Time) entity.Bill {
	b.MarkPaid(payedAt, paymentID)
	return b
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}
