package dto

import "github.com/aarondl/null/v8"

type CreateTruckDTO struct {
	PlateNo           string   `json:"plate_no" validate:"required"`
	Type              string   `json:"type" validate:"required"`
	Model             *string  `json:"model"`
	Status            *string  `json:"status" validate:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
	CurrentLocationID null.Int `json:"current_location_id"`
	Notes             *string  `json:"notes"`
}

type UpdateTruckDTO struct {
	PlateNo           string   `json:"plate_no" validate:"required"`
	Type              string   `json:"type" validate:"required"`
	Model             *string  `json:"model"`
	Status            string   `json:"status" validate:"required,oneof=ACTIVE MAINTENANCE RETIRED"`
	CurrentLocationID null.Int `json:"current_location_id"`
	Notes             *string  `json:"notes"`
}

type TruckDTO struct {
	ID                uint64  `json:"id"`
	PlateNo           string  `json:"plate_no"`
	Type              string  `json:"type"`
	Model             *string `json:"model,omitempty"`
	Status            string  `json:"status"`
	CurrentLocationID *uint64 `json:"current_location_id,omitempty"`
	LocationName      *string `json:"location_name,omitempty"`
	LocationType      *string `json:"location_type,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`

	Equipment []EquipmentItemDTO `json:"equipment,omitempty"`
}
