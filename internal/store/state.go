package store

import (
	"fmt"
	"maps"
	"time"

	"github.com/samandr77/microservices/billing/internal/entity"
)

// state holds every collection in store order.
type state struct {
	propertyKinds   []entity.PropertyKind
	properties      []entity.Property
	permissions     []entity.PropertyPermission
	providers       []entity.Provider
	serviceAccounts []entity.ServiceAccount
	bills           []entity.Bill
	payments        []entity.Payment
	paySystems      []entity.PaySystem
	seq             sequences
}

type sequences struct {
	property       int64
	permission     int64
	serviceAccount int64
	bill           int64
	payment        int64
}

func (s *state) clone() state {
	c := state{
		propertyKinds:   append([]entity.PropertyKind(nil), s.propertyKinds...),
		properties:      make([]entity.Property, len(s.properties)),
		permissions:     make([]entity.PropertyPermission, len(s.permissions)),
		providers:       append([]entity.Provider(nil), s.providers...),
		serviceAccounts: make([]entity.ServiceAccount, len(s.serviceAccounts)),
		bills:           make([]entity.Bill, len(s.bills)),
		payments:        make([]entity.Payment, len(s.payments)),
		paySystems:      append([]entity.PaySystem(nil), s.paySystems...),
		seq:             s.seq,
	}

	for i, v := range s.properties {
		c.properties[i] = cloneProperty(v)
	}

	for i, v := range s.permissions {
		c.permissions[i] = clonePermission(v)
	}

	for i, v := range s.serviceAccounts {
		c.serviceAccounts[i] = cloneServiceAccount(v)
	}

	for i, v := range s.bills {
		c.bills[i] = cloneBill(v)
	}

	for i, v := range s.payments {
		c.payments[i] = clonePayment(v)
	}

	return c
}

// resetSequences continues every sequence after the largest id present.
func (s *state) resetSequences() {
	s.seq = sequences{}

	for _, v := range s.properties {
		s.seq.property = max(s.seq.property, v.ID)
	}

	for _, v := range s.permissions {
		s.seq.permission = max(s.seq.permission, v.ID)
	}

	for _, v := range s.serviceAccounts {
		s.seq.serviceAccount = max(s.seq.serviceAccount, v.ID)
	}

	for _, v := range s.bills {
		s.seq.bill = max(s.seq.bill, v.ID)
	}

	for _, v := range s.payments {
		s.seq.payment = max(s.seq.payment, v.ID)
	}
}

// checkIntegrity verifies that every reference between collections resolves
// and that ids are positive and unique.
func (s *state) checkIntegrity() error {
	properties := make(map[int64]struct{}, len(s.properties))

	for _, p := range s.properties {
		if err := addID(properties, entity.EntityProperty, p.ID); err != nil {
			return err
		}
	}

	permissions := make(map[int64]struct{}, len(s.permissions))

	for _, p := range s.permissions {
		if err := addID(permissions, entity.EntityPropertyPermission, p.ID); err != nil {
			return err
		}

		if _, ok := properties[p.PropertyID]; !ok {
			return violation("permission %d references missing property %d", p.ID, p.PropertyID)
		}
	}

	accounts := make(map[int64]struct{}, len(s.serviceAccounts))

	for _, sa := range s.serviceAccounts {
		if err := addID(accounts, entity.EntityServiceAccount, sa.ID); err != nil {
			return err
		}

		if _, ok := properties[sa.PropertyID]; !ok {
			return violation("service account %d references missing property %d", sa.ID, sa.PropertyID)
		}
	}

	bills := make(map[int64]struct{}, len(s.bills))

	for _, b := range s.bills {
		if err := addID(bills, entity.EntityBill, b.ID); err != nil {
			return err
		}

		if _, ok := accounts[b.ServiceAccountID]; !ok {
			return violation("bill %d references missing service account %d", b.ID, b.ServiceAccountID)
		}
	}

	payments := make(map[int64]struct{}, len(s.payments))

	for _, p := range s.payments {
		if err := addID(payments, entity.EntityPayment, p.ID); err != nil {
			return err
		}

		if _, ok := bills[p.BillID]; !ok {
			return violation("payment %d references missing bill %d", p.ID, p.BillID)
		}
	}

	return nil
}

// checkReferenceData verifies that property kinds, providers and pay systems
// referenced by the mutable collections are present.
func (s *state) checkReferenceData() error {
	kinds := make(map[int64]struct{}, len(s.propertyKinds))
	for _, k := range s.propertyKinds {
		kinds[k.ID] = struct{}{}
	}

	for _, p := range s.properties {
		if _, ok := kinds[p.PropertyKindID]; !ok {
			return violation("property %d references missing property kind %d", p.ID, p.PropertyKindID)
		}
	}

	providers := make(map[int64]struct{}, len(s.providers))
	for _, p := range s.providers {
		providers[p.ID] = struct{}{}
	}

	for _, sa := range s.serviceAccounts {
		if sa.ProviderID == nil {
			continue
		}

		if _, ok := providers[*sa.ProviderID]; !ok {
			return violation("service account %d references missing provider %d", sa.ID, *sa.ProviderID)
		}
	}

	paySystems := make(map[int64]struct{}, len(s.paySystems))
	for _, ps := range s.paySystems {
		paySystems[ps.ID] = struct{}{}
	}

	for _, p := range s.payments {
		if _, ok := paySystems[p.PaySystemID]; !ok {
			return violation("payment %d references missing paysystem %d", p.ID, p.PaySystemID)
		}
	}

	return nil
}

func addID(seen map[int64]struct{}, e entity.EntityType, id int64) error {
	if id <= 0 {
		return violation("%s has non-positive id %d", e, id)
	}

	if _, ok := seen[id]; ok {
		return violation("%s id %d is not unique", e, id)
	}

	seen[id] = struct{}{}

	return nil
}

func violation(format string, args ...any) error {
	return &entity.InvariantViolationError{Reason: fmt.Sprintf(format, args...)}
}

func cloneProperty(p entity.Property) entity.Property {
	if p.Address != nil {
		addr := *p.Address
		p.Address = &addr
	}

	p.Data = cloneMap(p.Data)

	return p
}

func clonePermission(p entity.PropertyPermission) entity.PropertyPermission {
	p.Expire = cloneTime(p.Expire)
	return p
}

func cloneServiceAccount(sa entity.ServiceAccount) entity.ServiceAccount {
	sa.ProviderID = cloneInt(sa.ProviderID)
	sa.Provider = nil

	return sa
}

func cloneBill(b entity.Bill) entity.Bill {
	b.DueDate = cloneTime(b.DueDate)
	b.PayedDate = cloneTime(b.PayedDate)
	b.PaymentID = cloneInt(b.PaymentID)
	b.Details = cloneMap(b.Details)
	b.ServiceAccount = nil

	return b
}

func clonePayment(p entity.Payment) entity.Payment {
	p.PaidAt = cloneTime(p.PaidAt)

	if p.Success != nil {
		success := *p.Success
		p.Success = &success
	}

	return p
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := *t

	return &v
}

func cloneInt(i *int64) *int64 {
	if i == nil {
		return nil
	}

	v := *i

	return &v
}

// cloneMap copies the top level of an opaque data bag.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	return maps.Clone(m)
}
