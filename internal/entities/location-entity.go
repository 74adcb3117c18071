package entities

import (
	"fleet-system/pkg/types"
)

type Location struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Notes   *string `json:"notes"`

	types.BaseEntity
}

var LocationTypes = []string{"GARAGE", "DEPOT", "PROJECT", "OTHER"}

func IsValidLocationType(t string) bool {
	for _, v := range LocationTypes {
		if v == t {
			return true
		}
	}
	return false
}
