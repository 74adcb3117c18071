package entities

import (
	"fleet-system/pkg/types"
)

type Truck struct {
	ID                uint64  `json:"id"`
	PlateNo           string  `json:"plate_no"`
	Type              string  `json:"type"`
	Model             *string `json:"model"`
	Status            string  `json:"status"`
	CurrentLocationID *uint64 `json:"current_location_id"`
	Notes             *string `json:"notes"`

	types.BaseEntity

	Location *Location `db:"-" json:"location,omitempty"`
}
