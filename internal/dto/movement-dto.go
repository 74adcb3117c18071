package dto

type CreateMovementDTO struct {
	ResourceType   string  `json:"resource_type" validate:"required,oneof=CRANE TRUCK EQUIPMENT"`
	ResourceID     uint64  `json:"resource_id" validate:"required,gt=0"`
	FromLocationID *uint64 `json:"from_location_id"`
	ToLocationID   uint64  `json:"to_location_id" validate:"required,gt=0"`
	MovedAt        *string `json:"moved_at"`
	MovedBy        *uint64 `json:"moved_by"`
	Notes          *string `json:"notes"`
}

type MovementLogDTO struct {
	ID               uint64  `json:"id"`
	ResourceType     string  `json:"resource_type"`
	ResourceID       uint64  `json:"resource_id"`
	FromLocationID   *uint64 `json:"from_location_id,omitempty"`
	FromLocationName *string `json:"from_location_name,omitempty"`
	ToLocationID     uint64  `json:"to_location_id"`
	ToLocationName   *string `json:"to_location_name,omitempty"`
	MovedAt          string  `json:"moved_at"`
	MovedBy          *uint64 `json:"moved_by,omitempty"`
	MovedByName      *string `json:"moved_by_name,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}
