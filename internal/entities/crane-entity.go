package entities

import (
	"fleet-system/pkg/types"
)

type Crane struct {
	ID                  uint64   `json:"id"`
	Name                string   `json:"name"`
	Model               string   `json:"model"`
	Type                string   `json:"type"`
	SerialNo            *string  `json:"serial_no"`
	Status              string   `json:"status"`
	CurrentLocationID   *uint64  `json:"current_location_id"`
	Notes               *string  `json:"notes"`
	PlateNo             *string  `json:"plate_no"`
	Tonnage             *float64 `json:"tonnage"`
	MachineCategory     *string  `json:"machine_category"`
	BrandModel          *string  `json:"brand_model"`
	ModelYear           *int     `json:"model_year"`
	KmReading           *float64 `json:"km_reading"`
	EngineHours         *float64 `json:"engine_hours"`
	CurrentLocationText *string  `json:"current_location_text"`

	types.BaseEntity

	// related data, not columns
	Location *Location `db:"-" json:"location,omitempty"`
}

// Crane type dictionary; PALETLI (crawler), SEPET (basket) and HIUP come
// from the fleet list nomenclature.
var CraneTypes = []string{"MOBILE", "PALETLI", "SEPET", "HIUP"}

func IsValidCraneType(t string) bool {
	for _, v := range CraneTypes {
		if v == t {
			return true
		}
	}
	return false
}
