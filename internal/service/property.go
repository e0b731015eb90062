package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

func (s *Service) AddProperty(ctx context.Context, p entity.Property) (entity.Property, error) {
	err := s.validateStruct(p)
	if err != nil {
		return entity.Property{}, fmt.Errorf("validate property: %w", err)
	}

	var created entity.Property

	_, err = s.store.Update(ctx, func(tx *store.Tx) error {
		err := checkPropertyKind(tx.View, p.PropertyKindID)
		if err != nil {
			return err
		}

		created, err = tx.CreateProperty(p)

		return err
	})
	if err != nil {
		return entity.Property{}, fmt.Errorf("create property: %w", err)
	}

	slog.InfoContext(ctx, "property created", slog.Int64("property_id", created.ID), slog.String("name", created.Name()))

	return created, nil
}

func (s *Service) UpdateProperty(ctx context.Context, id int64, patch entity.PropertyPatch) (entity.Property, error) {
	var updated entity.Property

	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		updated, err = tx.UpdateProperty(id, func(p *entity.Property) error {
			patch.Apply(p)

			err := s.validateStruct(p)
			if err != nil {
				return err
			}

			return checkPropertyKind(tx.View, p.PropertyKindID)
		})

		return err
	})
	if err != nil {
		return entity.Property{}, fmt.Errorf("update property %d: %w", id, err)
	}

	return updated, nil
}

// DeleteProperty removes the property together with everything that hangs off it.
func (s *Service) DeleteProperty(ctx context.Context, id int64) error {
	changes, err := s.store.Update(ctx, func(tx *store.Tx) error {
		return tx.DeleteProperty(id)
	})
	if err != nil {
		return fmt.Errorf("delete property %d: %w", id, err)
	}

	slog.InfoContext(ctx, "property deleted", slog.Int64("property_id", id), slog.Int("removed", len(changes)))

	return nil
}

func (s *Service) GrantPermission(ctx context.Context, perm entity.PropertyPermission) (entity.PropertyPermission, error) {
	err := s.validateStruct(perm)
	if err != nil {
		return entity.PropertyPermission{}, fmt.Errorf("validate permission: %w", err)
	}

	var created entity.PropertyPermission

	_, err = s.store.Update(ctx, func(tx *store.Tx) error {
		var err error

		created, err = tx.GrantPermission(perm)

		return err
	})
	if err != nil {
		return entity.PropertyPermission{}, fmt.Errorf("grant permission on property %d: %w", perm.PropertyID, err)
	}

	return created, nil
}

func (s *Service) RevokePermission(ctx context.Context, id int64) error {
	_, err := s.store.Update(ctx, func(tx *store.Tx) error {
		return tx.RevokePermission(id)
	})
	if err != nil {
		return fmt.Errorf("revoke permission %d: %w", id, err)
	}

	return nil
}

func (s *Service) Properties() []entity.Property {
	return s.view().Properties()
}

// UserProperties returns the properties the user holds an unexpired permission on.
func (s *Service) UserProperties(userID string) []entity.Property {
	v := s.view()
	now := s.store.Now()

	allowed := make(map[int64]struct{})

	for _, perm := range v.Permissions() {
		if perm.UserID == userID && perm.ActiveAt(now) {
			allowed[perm.PropertyID] = struct{}{}
		}
	}

	var out []entity.Property

	for _, p := range v.Properties() {
		if _, ok := allowed[p.ID]; ok {
			out = append(out, p)
		}
	}

	return out
}

// PropertiesByProviderKind returns properties having at least one service account
// with a provider of the given kind.
func (s *Service) PropertiesByProviderKind(kind entity.ProviderKind) ([]entity.Property, error) {
	err := kind.Validate()
	if err != nil {
		return nil, err
	}

	v := s.view()

	if kind == entity.ProviderKindAll {
		return v.Properties(), nil
	}

	matched := make(map[int64]struct{})

	for _, sa := range v.ServiceAccounts() {
		if sa.ProviderID == nil {
			continue
		}

		provider, ok := v.Provider(*sa.ProviderID)
		if ok && provider.Kind == kind {
			matched[sa.PropertyID] = struct{}{}
		}
	}

	var out []entity.Property

	for _, p := range v.Properties() {
		if _, ok := matched[p.ID]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func checkPropertyKind(v store.View, id int64) error {
	for _, k := range v.PropertyKinds() {
		if k.ID == id {
			return nil
		}
	}

	return entity.NewNotFoundError(entity.EntityPropertyKind, id)
}
