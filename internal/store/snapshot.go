package store

import (
	"github.com/samandr77/microservices/billing/internal/entity"
)

// Snapshot is a point-in-time copy of every collection, in store order.
type Snapshot struct {
	PropertyKinds   []entity.PropertyKind       `json:"property_kinds"`
	Properties      []entity.Property           `json:"properties"`
	Permissions     []entity.PropertyPermission `json:"property_permissions"`
	Providers       []entity.Provider           `json:"providers"`
	ServiceAccounts []entity.ServiceAccount     `json:"service_accounts"`
	Bills           []entity.Bill               `json:"bills"`
	Payments        []entity.Payment            `json:"payments"`
	PaySystems      []entity.PaySystem          `json:"paysystems"`
}

// ReferenceData is the read-only part of the state supplied by the backend.
type ReferenceData struct {
	PropertyKinds []entity.PropertyKind
	Providers     []entity.Provider
	PaySystems    []entity.PaySystem
}

func snapshotFromState(s *state) Snapshot {
	c := s.clone()

	return Snapshot{
		PropertyKinds:   c.propertyKinds,
		Properties:      c.properties,
		Permissions:     c.permissions,
		Providers:       c.providers,
		ServiceAccounts: c.serviceAccounts,
		Bills:           c.bills,
		Payments:        c.payments,
		PaySystems:      c.paySystems,
	}
}

func stateFromSnapshot(snap Snapshot) state {
	src := state{
		propertyKinds:   snap.PropertyKinds,
		properties:      snap.Properties,
		permissions:     snap.Permissions,
		providers:       snap.Providers,
		serviceAccounts: snap.ServiceAccounts,
		bills:           snap.Bills,
		payments:        snap.Payments,
		paySystems:      snap.PaySystems,
	}

	st := src.clone()
	st.resetSequences()

	return st
}
