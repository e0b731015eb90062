package entity

type EntityType string

const (
	EntityProperty           EntityType = "property"
	EntityPropertyPermission EntityType = "property_permission"
	EntityPropertyKind       EntityType = "property_kind"
	EntityProvider           EntityType = "provider"
	EntityServiceAccount     EntityType = "service_account"
	EntityBill               EntityType = "bill"
	EntityPayment            EntityType = "payment"
	EntityPaySystem          EntityType = "paysystem"
)

func (e EntityType) String() string {
	return string(e)
}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change is one committed mutation. After holds the entity value for create and update,
// and is nil for delete.
type Change struct {
	Entity EntityType
	Action Action
	ID     int64
	After  any
}
