package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

func (s *Service) AddServiceAccount(ctx context.Context, propertyID int64, sa entity.ServiceAccount) (entity.ServiceAccount, error) {
	sa.PropertyID = propertyID
	sa.Provider = nil

	err := s.validateStruct(sa)
	if err != nil {
		return entity.ServiceAccount{}, fmt.Errorf("validate service account: %w", err)
	}

	var created entity.ServiceAccount

	_, err = s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		created, err = tx.CreateServiceAccount(sa)

		return err
	})
	if err != nil {
		return entity.ServiceAccount{}, fmt.Errorf("create service account for property %d: %w", propertyID, err)
	}

	slog.InfoContext(ctx, "service account created",
		slog.Int64("service_account_id", created.ID), slog.Int64("property_id", propertyID))

	return created, nil
}

func (s *Service) UpdateServiceAccount(ctx context.Context, id int64, patch entity.ServiceAccountPatch) (entity.ServiceAccount, error) {
	var updated entity.ServiceAccount

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		updated, err = tx.UpdateServiceAccount(id, func(sa *entity.ServiceAccount) error {
			patch.Apply(sa)
			return s.validateStruct(sa)
		})

		return err
	})
	if err != nil {
		return entity.ServiceAccount{}, fmt.Errorf("update service account %d: %w", id, err)
	}

	return updated, nil
}

// DeleteServiceAccount removes the account with its bills and their payments.
func (s *Service) DeleteServiceAccount(ctx context.Context, id int64) error {
	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		return tx.DeleteServiceAccount(id)
	})
	if err != nil {
		return fmt.Errorf("delete service account %d: %w", id, err)
	}

	slog.InfoContext(ctx, "service account deleted", slog.Int64("service_account_id", id))

	return nil
}

// PropertyServices returns the property's accounts in store order with providers joined.
func (s *Service) PropertyServices(propertyID int64) []entity.ServiceAccount {
	v := s.view()

	var out []entity.ServiceAccount

	for _, sa := range v.ServiceAccounts() {
		if sa.PropertyID == propertyID {
			out = append(out, joinProvider(v, sa))
		}
	}

	return out
}

// ServiceCountsByKind counts service accounts per provider kind. Accounts without a
// known provider are not counted.
func (s *Service) ServiceCountsByKind() map[entity.ProviderKind]int {
	v := s.view()
	counts := make(map[entity.ProviderKind]int)

	for _, sa := range v.ServiceAccounts() {
		if sa.ProviderID == nil {
			continue
		}

		if provider, ok := v.Provider(*sa.ProviderID); ok {
			counts[provider.Kind]++
		}
	}

	return counts
}

func joinProvider(v store.View, sa entity.ServiceAccount) entity.ServiceAccount {
	sa.Provider = nil

	if sa.ProviderID != nil {
		if provider, ok := v.Provider(*sa.ProviderID); ok {
			sa.Provider = &provider
		}
	}

	return sa
}
