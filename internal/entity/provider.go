package entity

import (
	"fmt"
	"time"
)

type ProviderKind string

const (
	ProviderKindAll         ProviderKind = "all"
	ProviderKindElectricity ProviderKind = "electricity"
	ProviderKindWater       ProviderKind = "water"
	ProviderKindGas         ProviderKind = "gas"
	ProviderKindInternet    ProviderKind = "internet"
	ProviderKindHeating     ProviderKind = "heating"
	ProviderKindOther       ProviderKind = "other"
)

func (k ProviderKind) String() string {
	return string(k)
}

func (k ProviderKind) Validate() error {
	switch k {
	case ProviderKindAll, ProviderKindElectricity, ProviderKindWater, ProviderKindGas,
		ProviderKindInternet, ProviderKindHeating, ProviderKindOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown provider kind %q", ErrInvalidArgument, k)
	}
}

type Provider struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name,omitempty"`
	Title   string       `json:"title"`
	Active  bool         `json:"active"`
	Created time.Time    `json:"created"`
	Kind    ProviderKind `json:"kind"`
}

type PaySystem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
