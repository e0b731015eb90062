package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/fixtures"
	"github.com/samandr77/microservices/billing/internal/repository"
	"github.com/samandr77/microservices/billing/internal/service"
	"github.com/samandr77/microservices/billing/internal/store"
	"github.com/samandr77/microservices/billing/pkg/broker"
	"github.com/samandr77/microservices/billing/pkg/config"
	"github.com/samandr77/microservices/billing/pkg/lock"
	"github.com/samandr77/microservices/billing/pkg/postgres"
)

type producer interface {
	service.Producer
	Close()
}

// app is the wired billing core shared by the commands.
type app struct {
	store   *store.Store
	service *service.Service
	repo    *repository.Repository

	closers []func()
}

func newApp(ctx context.Context, cfg config.Config) (_ *app, err error) {
	a := &app{}

	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	loc, err := cfg.Billing.Location()
	if err != nil {
		return nil, fmt.Errorf("load billing timezone: %w", err)
	}

	err = a.initStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var p producer = broker.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		p = broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, broker.Topics{
			BillPaid:       cfg.Kafka.BillPaidTopic,
			PaymentCreated: cfg.Kafka.PaymentCreatedTopic,
			BillOverdue:    cfg.Kafka.BillOverdueTopic,
		})
	}

	a.closers = append(a.closers, p.Close)

	var locker service.Locker = lock.Noop{}

	if cfg.Redis.Addr != "" {
		rdb, err := lock.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}

		a.closers = append(a.closers, func() { _ = rdb.Close() })
		locker = lock.New(rdb)
	}

	var reference service.ReferenceSource
	if a.repo != nil {
		reference = a.repo
	}

	a.service = service.New(a.store, p, locker, reference, service.Options{
		DefaultPaySystemID: cfg.Billing.DefaultPaySystemID,
		Location:           loc,
	})

	return a, nil
}

// initStore hydrates the store from Postgres when a DSN is set, otherwise from the demo data.
func (a *app) initStore(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.DSN == "" {
		a.store = store.New()
		a.closers = append(a.closers, a.store.Close)

		snap := fixtures.Demo()
		if !cfg.Billing.SeedDemoData {
			snap = store.Snapshot{
				PropertyKinds: snap.PropertyKinds,
				Providers:     snap.Providers,
				PaySystems:    snap.PaySystems,
			}
		}

		err := a.store.Import(snap)
		if err != nil {
			return fmt.Errorf("import demo data: %w", err)
		}

		slog.InfoContext(ctx, "store is in memory only", slog.Bool("demo_data", cfg.Billing.SeedDemoData))

		return nil
	}

	version, err := postgres.UpMigrations(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("up migrations: %w", err)
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	a.closers = append(a.closers, pool.Close)
	a.repo = repository.New(pool)

	a.store = store.New(store.WithCommitHook(a.repo.Apply))
	a.closers = append(a.closers, a.store.Close)

	snap, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	err = a.store.Import(snap)
	if err != nil {
		return fmt.Errorf("import state: %w", err)
	}

	slog.InfoContext(ctx, "store hydrated from postgres",
		slog.Int64("schema_version", version),
		slog.Int("properties", len(snap.Properties)),
		slog.Int("bills", len(snap.Bills)))

	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	a.closers = nil
}
