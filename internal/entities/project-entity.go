package entities

import (
	"time"

	"fleet-system/pkg/types"
)

type Project struct {
	ID                   uint64     `json:"id"`
	Name                 string     `json:"name"`
	CustomerID           *uint64    `json:"customer_id"`
	LocationID           *uint64    `json:"location_id"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	ActualStartDate      *time.Time `json:"actual_start_date"`
	ActualEndDate        *time.Time `json:"actual_end_date"`
	Status               string     `json:"status"`
	Notes                *string    `json:"notes"`
	ProjectEngineerID    *uint64    `json:"project_engineer_id"`
	ProjectSiteManagerID *uint64    `json:"project_site_manager_id"`

	types.BaseEntity

	Customer *Customer `db:"-" json:"customer,omitempty"`
	Location *Location `db:"-" json:"location,omitempty"`
}

var ProjectStatuses = []string{"PLANNED", "ACTIVE", "COMPLETED", "CANCELLED"}
