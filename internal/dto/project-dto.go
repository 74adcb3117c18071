package dto

import "github.com/aarondl/null/v8"

type CreateProjectDTO struct {
	Name                 string   `json:"name" validate:"required"`
	CustomerID           null.Int `json:"customer_id"`
	LocationID           null.Int `json:"location_id"`
	StartDate            *string  `json:"start_date"`
	EndDate              *string  `json:"end_date"`
	Status               *string  `json:"status" validate:"omitempty,oneof=PLANNED ACTIVE COMPLETED CANCELLED"`
	Notes                *string  `json:"notes"`
	ProjectEngineerID    null.Int `json:"project_engineer_id"`
	ProjectSiteManagerID null.Int `json:"project_site_manager_id"`
}

type UpdateProjectDTO struct {
	Name                 string   `json:"name" validate:"required"`
	CustomerID           null.Int `json:"customer_id"`
	LocationID           null.Int `json:"location_id"`
	StartDate            *string  `json:"start_date"`
	EndDate              *string  `json:"end_date"`
	ActualStartDate      *string  `json:"actual_start_date"`
	ActualEndDate        *string  `json:"actual_end_date"`
	Status               string   `json:"status" validate:"required,oneof=PLANNED ACTIVE COMPLETED CANCELLED"`
	Notes                *string  `json:"notes"`
	ProjectEngineerID    null.Int `json:"project_engineer_id"`
	ProjectSiteManagerID null.Int `json:"project_site_manager_id"`
}

type ProjectDTO struct {
	ID                     uint64  `json:"id"`
	Name                   string  `json:"name"`
	CustomerID             *uint64 `json:"customer_id,omitempty"`
	CustomerName           *string `json:"customer_name,omitempty"`
	CustomerCity           *string `json:"customer_city,omitempty"`
	LocationID             *uint64 `json:"location_id,omitempty"`
	LocationName           *string `json:"location_name,omitempty"`
	LocationType           *string `json:"location_type,omitempty"`
	StartDate              *string `json:"start_date,omitempty"`
	EndDate                *string `json:"end_date,omitempty"`
	ActualStartDate        *string `json:"actual_start_date,omitempty"`
	ActualEndDate          *string `json:"actual_end_date,omitempty"`
	Status                 string  `json:"status"`
	Notes                  *string `json:"notes,omitempty"`
	ProjectEngineerID      *uint64 `json:"project_engineer_id,omitempty"`
	ProjectEngineerName    *string `json:"project_engineer_name,omitempty"`
	ProjectSiteManagerID   *uint64 `json:"project_site_manager_id,omitempty"`
	ProjectSiteManagerName *string `json:"project_site_manager_name,omitempty"`
	CreatedAt              string  `json:"created_at,omitempty"`
	UpdatedAt              string  `json:"updated_at,omitempty"`

	Assignments []AssignmentDTO `json:"assignments,omitempty"`
}
