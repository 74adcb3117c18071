package entities

import (
	"fleet-system/pkg/types"
)

type EquipmentType struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Unit     *string `json:"unit"`

	types.BaseEntity
}

// EquipmentItem is a single physical unit of an equipment type. It sits at a
// location or on a truck, never both at once; both unset means unspecified.
type EquipmentItem struct {
	ID                uint64  `json:"id"`
	EquipmentTypeID   uint64  `json:"equipment_type_id"`
	SerialNo          *string `json:"serial_no"`
	Status            string  `json:"status"`
	CurrentLocationID *uint64 `json:"current_location_id"`
	OnTruckID         *uint64 `json:"on_truck_id"`
	OwnerCraneID      *uint64 `json:"owner_crane_id"`
	Notes             *string `json:"notes"`

	types.BaseEntity

	EquipmentType *EquipmentType `db:"-" json:"equipment_type,omitempty"`
	Location      *Location      `db:"-" json:"location,omitempty"`
	Truck         *Truck         `db:"-" json:"truck,omitempty"`
	OwnerCrane    *Crane         `db:"-" json:"owner_crane,omitempty"`
}

var EquipmentCategories = []string{"BOOM", "JIB", "COUNTERWEIGHT", "OTHER"}

var EquipmentStatuses = []string{"AVAILABLE", "IN_USE", "MAINTENANCE", "RETIRED"}
