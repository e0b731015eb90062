package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/billing/internal/entity"
)

func payCmd() *cobra.Command {
	var (
		billID      int64
		paySystemID int64
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Settle one bill or every pending bill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all == (billID != 0) {
				return errors.New("set exactly one of --bill or --all")
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var payments []entity.Payment

			switch {
			case all:
				payments, err = a.service.PayAllBills(cmd.Context())
			case paySystemID != 0:
				var p entity.Payment

				p, err = a.service.PayBillVia(cmd.Context(), billID, paySystemID)
				payments = append(payments, p)
			default:
				var p entity.Payment

				p, err = a.service.PayBill(cmd.Context(), billID)
				payments = append(payments, p)
			}

			if err != nil {
				return err
			}

			for _, p := range payments {
				fmt.Fprintf(cmd.OutOrStdout(), "bill %d paid by payment %d: %s\n",
					p.BillID, p.ID, p.AmountTotal.StringFixed(2))
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&billID, "bill", 0, "id of the bill to pay")
	cmd.Flags().Int64Var(&paySystemID, "paysystem", 0, "pay system to use instead of the default one")
	cmd.Flags().BoolVar(&all, "all", false, "pay every pending bill")

	return cmd
}
