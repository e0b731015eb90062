package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySpending is the total of bills settled within one calendar month.
type MonthlySpending struct {
	Month  string          `json:"month"`
	Period time.Time       `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// SortSpendingChronologically orders buckets from the oldest month.
func SortSpendingChronologically(s []MonthlySpending) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Period.Before(s[j].Period)
	})
}

type PaymentRecord struct {
	Payment        Payment        `json:"payment"`
	Bill           Bill           `json:"bill"`
	ServiceAccount ServiceAccount `json:"service_account"`
}

type PaymentHistory struct {
	Records []PaymentRecord       `json:"records"`
	Counts  map[PaymentStatus]int `json:"counts"`
	Total   int                   `json:"total"`
}
