package dto

type CreateLocationDTO struct {
	Name    string  `json:"name" validate:"required"`
	Type    string  `json:"type" validate:"required,oneof=GARAGE DEPOT PROJECT OTHER"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Notes   *string `json:"notes"`
}

type UpdateLocationDTO struct {
	Name    string  `json:"name" validate:"required"`
	Type    string  `json:"type" validate:"required,oneof=GARAGE DEPOT PROJECT OTHER"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Notes   *string `json:"notes"`
}

type LocationDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// LocationResourcesDTO lists everything currently sitting at a location.
type LocationResourcesDTO struct {
	Cranes    []CraneDTO         `json:"cranes"`
	Trucks    []TruckDTO         `json:"trucks"`
	Equipment []EquipmentItemDTO `json:"equipment"`
}
