package entity

// ServiceAccount is a utility subscription of one property with one provider.
type ServiceAccount struct {
	ID            int64  `json:"id"`
	PropertyID    int64  `json:"property_id" validate:"gt=0"`
	ProviderID    *int64 `json:"provider_id,omitempty" validate:"omitempty,gt=0"`
	AccountNumber string `json:"account_number,omitempty"`
	Description   string `json:"description,omitempty"`
	BillingDay    int    `json:"billing_day" validate:"min=1,max=31"`
	FlatRate      bool   `json:"flat_rate"`
	AccountType   string `json:"account_type"`

	// Provider is filled by the join layer and never stored.
	Provider *Provider `json:"provider,omitempty" validate:"-"`
}

// ServiceAccountPatch carries the fields of an update. Nil fields are left untouched.
// ClearProvider detaches the provider and wins over ProviderID.
type ServiceAccountPatch struct {
	PropertyID    *int64
	ProviderID    *int64
	ClearProvider bool
	AccountNumber *string
	Description   *string
	BillingDay    *int
	FlatRate      *bool
	AccountType   *string
}

func (p ServiceAccountPatch) Apply(dst *ServiceAccount) {
	if p.PropertyID != nil {
		dst.PropertyID = *p.PropertyID
	}

	switch {
	case p.ClearProvider:
		dst.ProviderID = nil
	case p.ProviderID != nil:
		id := *p.ProviderID
		dst.ProviderID = &id
	}

	if p.AccountNumber != nil {
		dst.AccountNumber = *p.AccountNumber
	}

	if p.Description != nil {
		dst.Description = *p.Description
	}

	if p.BillingDay != nil {
		dst.BillingDay = *p.BillingDay
	}

	if p.FlatRate != nil {
		dst.FlatRate = *p.FlatRate
	}

	if p.AccountType != nil {
		dst.AccountType = *p.AccountType
	}
}
