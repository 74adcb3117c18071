package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentTypeDTO struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=BOOM JIB COUNTERWEIGHT OTHER"`
	Unit     *string `json:"unit"`
}

type EquipmentTypeDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      *string `json:"unit,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

type CreateEquipmentItemDTO struct {
	EquipmentTypeID   uint64   `json:"equipment_type_id" validate:"required,gt=0"`
	SerialNo          *string  `json:"serial_no"`
	Status            *string  `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE RETIRED"`
	CurrentLocationID null.Int `json:"current_location_id"`
	OnTruckID         null.Int `json:"on_truck_id"`
	OwnerCraneID      null.Int `json:"owner_crane_id"`
	Notes             *string  `json:"notes"`
}

// SetEquipmentLocationDTO carries the location tagged union: at most one of
// the two references may be set; neither set means "unspecified".
type SetEquipmentLocationDTO struct {
	CurrentLocationID null.Int `json:"current_location_id"`
	OnTruckID         null.Int `json:"on_truck_id"`
}

type EquipmentItemDTO struct {
	ID                    uint64  `json:"id"`
	EquipmentTypeID       uint64  `json:"equipment_type_id"`
	EquipmentTypeName     *string `json:"equipment_type_name,omitempty"`
	EquipmentTypeCategory *string `json:"equipment_type_category,omitempty"`
	EquipmentUnit         *string `json:"equipment_unit,omitempty"`
	SerialNo              *string `json:"serial_no,omitempty"`
	Status                string  `json:"status"`
	CurrentLocationID     *uint64 `json:"current_location_id,omitempty"`
	LocationName          *string `json:"location_name,omitempty"`
	OnTruckID             *uint64 `json:"on_truck_id,omitempty"`
	TruckPlateNo          *string `json:"truck_plate_no,omitempty"`
	OwnerCraneID          *uint64 `json:"owner_crane_id,omitempty"`
	OwnerCraneName        *string `json:"owner_crane_name,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	CreatedAt             string  `json:"created_at,omitempty"`
}
