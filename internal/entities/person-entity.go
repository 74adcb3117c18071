package entities

import (
	"fleet-system/pkg/types"
)

type Person struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	Role   string  `json:"role"`
	Status string  `json:"status"`
	Notes  *string `json:"notes"`

	types.BaseEntity
}
