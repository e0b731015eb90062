package store

import (
	"slices"
	"time"

	"github.com/samandr77/microservices/billing/internal/entity"
)

// Tx is a mutable copy of the state. Reads through the embedded View see the
// transaction's own writes.
type Tx struct {
	View
	now     time.Time
	changes []entity.Change
}

// Now is the instant shared by every mutation of the transaction.
func (tx *Tx) Now() time.Time {
	return tx.now
}

func (tx *Tx) record(e entity.EntityType, a entity.Action, id int64, after any) {
	tx.changes = append(tx.changes, entity.Change{Entity: e, Action: a, ID: id, After: after})
}

func (tx *Tx) CreateProperty(p entity.Property) (entity.Property, error) {
	tx.st.seq.property++
	p.ID = tx.st.seq.property

	p = cloneProperty(p)
	tx.st.properties = append(tx.st.properties, p)
	tx.record(entity.EntityProperty, entity.ActionCreate, p.ID, cloneProperty(p))

	return cloneProperty(p), nil
}

func (tx *Tx) UpdateProperty(id int64, mutate func(*entity.Property) error) (entity.Property, error) {
	i := tx.propertyIndex(id)
	if i < 0 {
		return entity.Property{}, entity.NewNotFoundError(entity.EntityProperty, id)
	}

	current := cloneProperty(tx.st.properties[i])

	err := mutate(&current)
	if err != nil {
		return entity.Property{}, err
	}

	current.ID = id
	tx.st.properties[i] = cloneProperty(current)
	tx.record(entity.EntityProperty, entity.ActionUpdate, id, cloneProperty(current))

	return cloneProperty(current), nil
}

// DeleteProperty removes the property with its permissions, service accounts,
// their bills and the bills' payments.
func (tx *Tx) DeleteProperty(id int64) error {
	i := tx.propertyIndex(id)
	if i < 0 {
		return entity.NewNotFoundError(entity.EntityProperty, id)
	}

	tx.st.permissions = slices.DeleteFunc(tx.st.permissions, func(p entity.PropertyPermission) bool {
		if p.PropertyID != id {
			return false
		}

		tx.record(entity.EntityPropertyPermission, entity.ActionDelete, p.ID, nil)

		return true
	})

	var accountIDs []int64

	for _, sa := range tx.st.serviceAccounts {
		if sa.PropertyID == id {
			accountIDs = append(accountIDs, sa.ID)
		}
	}

	for _, accountID := range accountIDs {
		tx.deleteServiceAccount(accountID)
	}

	tx.st.properties = slices.Delete(tx.st.properties, i, i+1)
	tx.record(entity.EntityProperty, entity.ActionDelete, id, nil)

	return nil
}

func (tx *Tx) GrantPermission(p entity.PropertyPermission) (entity.PropertyPermission, error) {
	if tx.propertyIndex(p.PropertyID) < 0 {
		return entity.PropertyPermission{}, entity.NewNotFoundError(entity.EntityProperty, p.PropertyID)
	}

	tx.st.seq.permission++
	p.ID = tx.st.seq.permission

	p = clonePermission(p)
	tx.st.permissions = append(tx.st.permissions, p)
	tx.record(entity.EntityPropertyPermission, entity.ActionCreate, p.ID, clonePermission(p))

	return clonePermission(p), nil
}

func (tx *Tx) RevokePermission(id int64) error {
	i := tx.permissionIndex(id)
	if i < 0 {
		return entity.NewNotFoundError(entity.EntityPropertyPermission, id)
	}

	tx.st.permissions = slices.Delete(tx.st.permissions, i, i+1)
	tx.record(entity.EntityPropertyPermission, entity.ActionDelete, id, nil)

	return nil
}

func (tx *Tx) CreateServiceAccount(sa entity.ServiceAccount) (entity.ServiceAccount, error) {
	err := tx.checkServiceAccountRefs(sa)
	if err != nil {
		return entity.ServiceAccount{}, err
	}

	tx.st.seq.serviceAccount++
	sa.ID = tx.st.seq.serviceAccount

	sa = cloneServiceAccount(sa)
	tx.st.serviceAccounts = append(tx.st.serviceAccounts, sa)
	tx.record(entity.EntityServiceAccount, entity.ActionCreate, sa.ID, cloneServiceAccount(sa))

	return cloneServiceAccount(sa), nil
}

func (tx *Tx) UpdateServiceAccount(id int64, mutate func(*entity.ServiceAccount) error) (entity.ServiceAccount, error) {
	i := tx.serviceAccountIndex(id)
	if i < 0 {
		return entity.ServiceAccount{}, entity.NewNotFoundError(entity.EntityServiceAccount, id)
	}

	current := cloneServiceAccount(tx.st.serviceAccounts[i])

	err := mutate(&current)
	if err != nil {
		return entity.ServiceAccount{}, err
	}

	current.ID = id
	current.Provider = nil

	err = tx.checkServiceAccountRefs(current)
	if err != nil {
		return entity.ServiceAccount{}, err
	}

	tx.st.serviceAccounts[i] = cloneServiceAccount(current)
	tx.record(entity.EntityServiceAccount, entity.ActionUpdate, id, cloneServiceAccount(current))

	return cloneServiceAccount(current), nil
}

// DeleteServiceAccount removes the account with its bills and their payments.
func (tx *Tx) DeleteServiceAccount(id int64) error {
	if tx.serviceAccountIndex(id) < 0 {
		return entity.NewNotFoundError(entity.EntityServiceAccount, id)
	}

	tx.deleteServiceAccount(id)

	return nil
}

func (tx *Tx) deleteServiceAccount(id int64) {
	billIDs := make(map[int64]struct{})

	for _, b := range tx.st.bills {
		if b.ServiceAccountID == id {
			billIDs[b.ID] = struct{}{}
		}
	}

	tx.st.payments = slices.DeleteFunc(tx.st.payments, func(p entity.Payment) bool {
		if _, ok := billIDs[p.BillID]; !ok {
			return false
		}

		tx.record(entity.EntityPayment, entity.ActionDelete, p.ID, nil)

		return true
	})

	tx.st.bills = slices.DeleteFunc(tx.st.bills, func(b entity.Bill) bool {
		if b.ServiceAccountID != id {
			return false
		}

		tx.record(entity.EntityBill, entity.ActionDelete, b.ID, nil)

		return true
	})

	tx.st.serviceAccounts = slices.DeleteFunc(tx.st.serviceAccounts, func(sa entity.ServiceAccount) bool {
		return sa.ID == id
	})

	tx.record(entity.EntityServiceAccount, entity.ActionDelete, id, nil)
}

func (tx *Tx) checkServiceAccountRefs(sa entity.ServiceAccount) error {
	if tx.propertyIndex(sa.PropertyID) < 0 {
		return entity.NewNotFoundError(entity.EntityProperty, sa.PropertyID)
	}

	if sa.ProviderID != nil {
		if _, ok := tx.Provider(*sa.ProviderID); !ok {
			return entity.NewNotFoundError(entity.EntityProvider, *sa.ProviderID)
		}
	}

	return nil
}

func (tx *Tx) CreateBill(b entity.Bill) (entity.Bill, error) {
	if tx.serviceAccountIndex(b.ServiceAccountID) < 0 {
		return entity.Bill{}, entity.NewNotFoundError(entity.EntityServiceAccount, b.ServiceAccountID)
	}

	tx.st.seq.bill++
	b.ID = tx.st.seq.bill

	b = cloneBill(b)
	tx.st.bills = append(tx.st.bills, b)
	tx.record(entity.EntityBill, entity.ActionCreate, b.ID, cloneBill(b))

	return cloneBill(b), nil
}

// UpdateBill mutates a bill. A paid bill cannot go back to pending.
func (tx *Tx) UpdateBill(id int64, mutate func(*entity.Bill) error) (entity.Bill, error) {
	i := tx.billIndex(id)
	if i < 0 {
		return entity.Bill{}, entity.NewNotFoundError(entity.EntityBill, id)
	}

	wasPaid := tx.st.bills[i].IsPaid()
	current := cloneBill(tx.st.bills[i])

	err := mutate(&current)
	if err != nil {
		return entity.Bill{}, err
	}

	current.ID = id
	current.ServiceAccount = nil

	if wasPaid && !current.IsPaid() {
		return entity.Bill{}, violation("bill %d is paid and cannot become pending", id)
	}

	if tx.serviceAccountIndex(current.ServiceAccountID) < 0 {
		return entity.Bill{}, entity.NewNotFoundError(entity.EntityServiceAccount, current.ServiceAccountID)
	}

	tx.st.bills[i] = cloneBill(current)
	tx.record(entity.EntityBill, entity.ActionUpdate, id, cloneBill(current))

	return cloneBill(current), nil
}

func (tx *Tx) CreatePayment(p entity.Payment) (entity.Payment, error) {
	if tx.billIndex(p.BillID) < 0 {
		return entity.Payment{}, entity.NewNotFoundError(entity.EntityBill, p.BillID)
	}

	if _, ok := tx.PaySystem(p.PaySystemID); !ok {
		return entity.Payment{}, entity.NewNotFoundError(entity.EntityPaySystem, p.PaySystemID)
	}

	err := p.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	tx.st.seq.payment++
	p.ID = tx.st.seq.payment

	p = clonePayment(p)
	tx.st.payments = append(tx.st.payments, p)
	tx.record(entity.EntityPayment, entity.ActionCreate, p.ID, clonePayment(p))

	return clonePayment(p), nil
}

func (tx *Tx) UpdatePayment(id int64, mutate func(*entity.Payment) error) (entity.Payment, error) {
	i := tx.paymentIndex(id)
	if i < 0 {
		return entity.Payment{}, entity.NewNotFoundError(entity.EntityPayment, id)
	}

	current := clonePayment(tx.st.payments[i])

	err := mutate(&current)
	if err != nil {
		return entity.Payment{}, err
	}

	current.ID = id

	err = current.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	tx.st.payments[i] = clonePayment(current)
	tx.record(entity.EntityPayment, entity.ActionUpdate, id, clonePayment(current))

	return clonePayment(current), nil
}
