package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/billing/internal/api/events"
	"github.com/samandr77/microservices/billing/pkg/broker"
	"github.com/samandr77/microservices/billing/pkg/job"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Hydrate the store, consume billing events and run periodic jobs until stopped",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(cfg.Kafka.Brokers) > 0 {
				h := events.NewEventHandler(a.service)

				consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup,
					cfg.Kafka.BillIssuedTopic, cfg.Kafka.PaymentConfirmedTopic).
					Handle(cfg.Kafka.BillIssuedTopic, h.OnBillIssued).
					Handle(cfg.Kafka.PaymentConfirmedTopic, h.OnPaymentConfirmed).
					Consume(ctx)
				defer consumer.Close()
			}

			jobs := job.NewService().
				RegisterJob("notify overdue bills", cfg.Billing.OverdueCheckInterval, a.service.NotifyOverdueBills).
				TryRegisterJob(a.repo != nil, "refresh reference data", cfg.Billing.ReferenceRefreshInterval, a.service.RefreshReferenceData)
			jobs.Start(ctx)

			slog.InfoContext(ctx, "service started", slog.Any("jobs", jobs.Jobs()))

			<-ctx.Done()

			slog.InfoContext(cmd.Context(), "shutting down")

			jobs.Stop()

			return nil
		},
	}
}
