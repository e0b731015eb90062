package store

import (
	"github.com/samandr77/microservices/billing/internal/entity"
)

// View is read access to one state. Every accessor returns copies, so callers
// cannot reach the store through the results.
type View struct {
	st *state
}

func (v View) PropertyKinds() []entity.PropertyKind {
	return append([]entity.PropertyKind(nil), v.st.propertyKinds...)
}

func (v View) Properties() []entity.Property {
	out := make([]entity.Property, 0, len(v.st.properties))
	for _, p := range v.st.properties {
		out = append(out, cloneProperty(p))
	}

	return out
}

func (v View) Property(id int64) (entity.Property, bool) {
	i := v.propertyIndex(id)
	if i < 0 {
		return entity.Property{}, false
	}

	return cloneProperty(v.st.properties[i]), true
}

func (v View) Permissions() []entity.PropertyPermission {
	out := make([]entity.PropertyPermission, 0, len(v.st.permissions))
	for _, p := range v.st.permissions {
		out = append(out, clonePermission(p))
	}

	return out
}

func (v View) Providers() []entity.Provider {
	return append([]entity.Provider(nil), v.st.providers...)
}

func (v View) Provider(id int64) (entity.Provider, bool) {
	for _, p := range v.st.providers {
		if p.ID == id {
			return p, true
		}
	}

	return entity.Provider{}, false
}

func (v View) ServiceAccounts() []entity.ServiceAccount {
	out := make([]entity.ServiceAccount, 0, len(v.st.serviceAccounts))
	for _, sa := range v.st.serviceAccounts {
		out = append(out, cloneServiceAccount(sa))
	}

	return out
}

func (v View) ServiceAccount(id int64) (entity.ServiceAccount, bool) {
	i := v.serviceAccountIndex(id)
	if i < 0 {
		return entity.ServiceAccount{}, false
	}

	return cloneServiceAccount(v.st.serviceAccounts[i]), true
}

func (v View) Bills() []entity.Bill {
	out := make([]entity.Bill, 0, len(v.st.bills))
	for _, b := range v.st.bills {
		out = append(out, cloneBill(b))
	}

	return out
}

func (v View) Bill(id int64) (entity.Bill, bool) {
	i := v.billIndex(id)
	if i < 0 {
		return entity.Bill{}, false
	}

	return cloneBill(v.st.bills[i]), true
}

func (v View) Payments() []entity.Payment {
	out := make([]entity.Payment, 0, len(v.st.payments))
	for _, p := range v.st.payments {
		out = append(out, clonePayment(p))
	}

	return out
}

func (v View) Payment(id int64) (entity.Payment, bool) {
	i := v.paymentIndex(id)
	if i < 0 {
		return entity.Payment{}, false
	}

	return clonePayment(v.st.payments[i]), true
}

func (v View) PaySystems() []entity.PaySystem {
	return append([]entity.PaySystem(nil), v.st.paySystems...)
}

func (v View) PaySystem(id int64) (entity.PaySystem, bool) {
	for _, p := range v.st.paySystems {
		if p.ID == id {
			return p, true
		}
	}

	return entity.PaySystem{}, false
}

func (v View) propertyIndex(id int64) int {
	for i, p := range v.st.properties {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (v View) permissionIndex(id int64) int {
	for i, p := range v.st.permissions {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (v View) serviceAccountIndex(id int64) int {
	for i, sa := range v.st.serviceAccounts {
		if sa.ID == id {
			return i
		}
	}

	return -1
}

func (v View) billIndex(id int64) int {
	for i, b := range v.st.bills {
		if b.ID == id {
			return i
		}
	}

	return -1
}

func (v View) paymentIndex(id int64) int {
	for i, p := range v.st.payments {
		if p.ID == id {
			return i
		}
	}

	return -1
}
