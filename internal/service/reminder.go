package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/entity"
)

const overdueLockKey = "billing:overdue-reminders"

// NotifyOverdueBills publishes a reminder for every pending bill past its due date.
// Only the replica holding the lock publishes.
func (s *Service) NotifyOverdueBills(ctx context.Context) error {
	release, err := s.locker.Obtain(ctx, overdueLockKey, s.opts.OverdueLockTTL)
	if errors.Is(err, entity.ErrLocked) {
		slog.DebugContext(ctx, "overdue reminders are handled by another replica")
		return nil
	}

	if err != nil {
		return fmt.Errorf("obtain lock %q: %w", overdueLockKey, err)
	}

	defer func() {
		if err := release(ctx); err != nil {
			slog.ErrorContext(ctx, "release overdue lock", slog.String("error", err.Error()))
		}
	}()

	now := s.store.Now()
	sent := 0

	for _, bill := range s.PendingBills() {
		if !bill.IsOverdue(now) {
			continue
		}

		s.producer.SendBillOverdue(ctx, bill)
		sent++
	}

	if sent > 0 {
		slog.InfoContext(ctx, "overdue reminders sent", slog.Int("count", sent))
	}

	return nil
}

// RefreshReferenceData reloads providers, pay systems and property kinds from the backend.
func (s *Service) RefreshReferenceData(ctx context.Context) error {
	ref, err := s.reference.ReferenceData(ctx)
	if err != nil {
		return fmt.Errorf("get reference data: %w", err)
	}

	err = s.store.LoadReferenceData(ref)
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}

	slog.DebugContext(ctx, "reference data refreshed",
		slog.Int("providers", len(ref.Providers)),
		slog.Int("paysystems", len(ref.PaySystems)),
		slog.Int("property_kinds", len(ref.PropertyKinds)))

	return nil
}
