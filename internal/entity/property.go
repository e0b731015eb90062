package entity

import (
	"fmt"
	"maps"
	"time"
)

type Address struct {
	Street string `json:"street,omitempty"`
	Number string `json:"number,omitempty"`
	City   string `json:"city,omitempty"`
	Postal string `json:"postal,omitempty"`
}

func (a Address) String() string {
	return a.Street + " " + a.Number + ", " + a.City + " " + a.Postal
}

type Property struct {
	ID             int64          `json:"id"`
	AddressText    string         `json:"address_txt,omitempty"`
	Address        *Address       `json:"address,omitempty"`
	Commercial     bool           `json:"commercial"`
	PropertyKindID int64          `json:"property_kind_id" validate:"gt=0"`
	Data           map[string]any `json:"data,omitempty"`
}

// Name returns the display name kept in the extra data bag, falling back to the address.
func (p Property) Name() string {
	if name, ok := p.Data["name"].(string); ok && name != "" {
		return name
	}

	if p.AddressText != "" {
		return p.AddressText
	}

	if p.Address != nil {
		return p.Address.String()
	}

	return fmt.Sprintf("property #%d", p.ID)
}

// PropertyPatch carries the fields of an update. Nil fields are left untouched;
// a non-nil Data replaces the whole bag.
type PropertyPatch struct {
	AddressText    *string
	Address        *Address
	Commercial     *bool
	PropertyKindID *int64
	Data           map[string]any
}

func (p PropertyPatch) Apply(dst *Property) {
	if p.AddressText != nil {
		dst.AddressText = *p.AddressText
	}

	if p.Address != nil {
		addr := *p.Address
		dst.Address = &addr
	}

	if p.Commercial != nil {
		dst.Commercial = *p.Commercial
	}

	if p.PropertyKindID != nil {
		dst.PropertyKindID = *p.PropertyKindID
	}

	if p.Data != nil {
		dst.Data = maps.Clone(p.Data)
	}
}

type PropertyKind struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Commercial bool   `json:"commercial"`
}

type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleFamily UserRole = "family"
	UserRoleTenant UserRole = "tenant"
	UserRoleOther  UserRole = "other"
)

type PropertyPermission struct {
	ID         int64      `json:"id"`
	PropertyID int64      `json:"property_id" validate:"gt=0"`
	UserID     string     `json:"user_id" validate:"required"`
	Role       UserRole   `json:"user_role" validate:"oneof=owner family tenant other"`
	Expire     *time.Time `json:"expire,omitempty"`
}

// ActiveAt reports whether the permission has not expired at t.
func (p PropertyPermission) ActiveAt(t time.Time) bool {
	return p.Expire == nil || p.Expire.After(t)
}
