package dto

type AssignResourceDTO struct {
	ResourceType string  `json:"resource_type" validate:"required,oneof=CRANE TRUCK EQUIPMENT PERSON"`
	ResourceID   uint64  `json:"resource_id" validate:"required,gt=0"`
	Notes        *string `json:"notes"`
}

type UnassignResourceDTO struct {
	Reason *string `json:"reason"`
}

type AmendUnassignReasonDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type AssignmentDTO struct {
	ID                 uint64  `json:"id"`
	ProjectID          uint64  `json:"project_id"`
	ResourceType       string  `json:"resource_type"`
	ResourceID         uint64  `json:"resource_id"`
	ResourceName       *string `json:"resource_name,omitempty"`
	AssignedAt         string  `json:"assigned_at"`
	UnassignedAt       *string `json:"unassigned_at,omitempty"`
	UnassignmentReason *string `json:"unassignment_reason,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}
