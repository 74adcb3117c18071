package dto

import "github.com/aarondl/null/v8"

type CreateCraneDTO struct {
	Name                string   `json:"name" validate:"required"`
	Model               string   `json:"model" validate:"required"`
	Type                string   `json:"type" validate:"required"`
	SerialNo            *string  `json:"serial_no"`
	Status              *string  `json:"status" validate:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
	CurrentLocationID   null.Int `json:"current_location_id"`
	Notes               *string  `json:"notes"`
	PlateNo             *string  `json:"plate_no"`
	Tonnage             *float64 `json:"tonnage"`
	MachineCategory     *string  `json:"machine_category"`
	BrandModel          *string  `json:"brand_model"`
	ModelYear           *int     `json:"model_year"`
	KmReading           *float64 `json:"km_reading"`
	EngineHours         *float64 `json:"engine_hours"`
	CurrentLocationText *string  `json:"current_location_text"`
}

type UpdateCraneDTO struct {
	Name                string   `json:"name" validate:"required"`
	Model               string   `json:"model" validate:"required"`
	Type                string   `json:"type" validate:"required"`
	SerialNo            *string  `json:"serial_no"`
	Status              string   `json:"status" validate:"required,oneof=ACTIVE MAINTENANCE RETIRED"`
	CurrentLocationID   null.Int `json:"current_location_id"`
	Notes               *string  `json:"notes"`
	PlateNo             *string  `json:"plate_no"`
	Tonnage             *float64 `json:"tonnage"`
	MachineCategory     *string  `json:"machine_category"`
	BrandModel          *string  `json:"brand_model"`
	ModelYear           *int     `json:"model_year"`
	KmReading           *float64 `json:"km_reading"`
	EngineHours         *float64 `json:"engine_hours"`
	CurrentLocationText *string  `json:"current_location_text"`
}

type MoveCraneDTO struct {
	ToLocationID uint64  `json:"to_location_id" validate:"required,gt=0"`
	MovedBy      *uint64 `json:"moved_by"`
	Notes        *string `json:"notes"`
}

type CraneDTO struct {
	ID                  uint64   `json:"id"`
	Name                string   `json:"name"`
	Model               string   `json:"model"`
	Type                string   `json:"type"`
	SerialNo            *string  `json:"serial_no,omitempty"`
	Status              string   `json:"status"`
	CurrentLocationID   *uint64  `json:"current_location_id,omitempty"`
	LocationName        *string  `json:"location_name,omitempty"`
	LocationType        *string  `json:"location_type,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
	PlateNo             *string  `json:"plate_no,omitempty"`
	Tonnage             *float64 `json:"tonnage,omitempty"`
	MachineCategory     *string  `json:"machine_category,omitempty"`
	BrandModel          *string  `json:"brand_model,omitempty"`
	ModelYear           *int     `json:"model_year,omitempty"`
	KmReading           *float64 `json:"km_reading,omitempty"`
	EngineHours         *float64 `json:"engine_hours,omitempty"`
	CurrentLocationText *string  `json:"current_location_text,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty"`

	Movements []MovementLogDTO   `json:"movements,omitempty"`
	Inventory []EquipmentItemDTO `json:"inventory,omitempty"`
}

type CraneImportResultDTO struct {
	Parsed   int `json:"parsed"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
