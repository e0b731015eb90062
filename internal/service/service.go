package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Producer interface {
	SendBillPaid(ctx context.Context, bill entity.Bill, payment entity.Payment)
	SendPaymentCreated(ctx context.Context, payment entity.Payment)
	SendBillOverdue(ctx context.Context, bill entity.Bill)
}

// Locker guards work that must run on one replica at a time.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

type ReferenceSource interface {
	ReferenceData(ctx context.Context) (store.ReferenceData, error)
}

type Options struct {
	DefaultPaySystemID int64
	// Location is the time zone of the monthly spending buckets.
	Location       *time.Location
	OverdueLockTTL time.Duration
}

type Service struct {
	store     *store.Store
	producer  Producer
	locker    Locker
	reference ReferenceSource
	validate  *validator.Validate
	opts      Options
}

func New(st *store.Store, producer Producer, locker Locker, reference ReferenceSource, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	if opts.OverdueLockTTL <= 0 {
		opts.OverdueLockTTL = time.Minute
	}

	return &Service{
		store:     st,
		producer:  producer,
		locker:    locker,
		reference: reference,
		validate:  newValidator(),
		opts:      opts,
	}
}

func (s *Service) view() store.View {
	var v store.View

	s.store.View(func(cur store.View) {
		v = cur
	})

	return v
}

func (s *Service) Providers() []entity.Provider {
	return s.view().Providers()
}

func (s *Service) PaySystems() []entity.PaySystem {
	return s.view().PaySystems()
}

func (s *Service) PropertyKinds() []entity.PropertyKind {
	return s.view().PropertyKinds()
}
