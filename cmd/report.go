package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/service"
)

type reportOptions struct {
	propertyID    int64
	chronological bool
}

func reportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print outstanding debt, pending bills and monthly spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return writeReport(cmd.OutOrStdout(), a.service, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.propertyID, "property", 0, "limit bills to one property")
	cmd.Flags().BoolVar(&opts.chronological, "chronological", false, "sort monthly spending from the oldest month")

	return cmd
}

func writeReport(out io.Writer, svc *service.Service, opts reportOptions) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	pending := svc.PendingBills()

	if opts.propertyID != 0 {
		pending = filterByProperty(pending, opts.propertyID)

		debt := decimal.Zero
		for _, b := range pending {
			debt = debt.Add(b.Amount)
		}

		fmt.Fprintf(w, "Debt of property %d:\t%s\n\n", opts.propertyID, debt.StringFixed(2))
	} else {
		fmt.Fprintf(w, "Total debt:\t%s\n\n", svc.TotalDebt().StringFixed(2))
	}

	fmt.Fprintln(w, "BILL\tACCOUNT\tPROVIDER\tAMOUNT\tDUE")

	for _, b := range pending {
		account, provider := "-", "-"

		if sa := b.ServiceAccount; sa != nil {
			account = sa.AccountNumber

			if sa.Provider != nil {
				provider = sa.Provider.Title
			}
		}

		due := "-"
		if b.DueDate != nil {
			due = b.DueDate.Format("2006-01-02")
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", b.ID, account, provider, b.Amount.StringFixed(2), due)
	}

	spending := svc.MonthlySpending()
	if opts.chronological {
		entity.SortSpendingChronologically(spending)
	}

	fmt.Fprintln(w, "\nMONTH\tSPENT")

	for _, m := range spending {
		fmt.Fprintf(w, "%s\t%s\n", m.Month, m.Amount.StringFixed(2))
	}

	return w.Flush()
}

func filterByProperty(bills []entity.Bill, propertyID int64) []entity.Bill {
	var out []entity.Bill

	for _, b := range bills {
		if b.ServiceAccount != nil && b.ServiceAccount.PropertyID == propertyID {
			out = append(out, b)
		}
	}

	return out
}
