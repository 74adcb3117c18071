package entities

import (
	"fleet-system/pkg/types"
)

type Customer struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	City  *string `json:"city"`
	Notes *string `json:"notes"`

	types.BaseEntity
}
