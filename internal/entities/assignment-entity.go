package entities

import "time"

// ProjectAssignment ties a resource (or person) to a project for an
// interval. unassigned_at == nil means the assignment is still open.
type ProjectAssignment struct {
	ID                 uint64     `json:"id"`
	ProjectID          uint64     `json:"project_id"`
	ResourceType       string     `json:"resource_type"`
	ResourceID         uint64     `json:"resource_id"`
	AssignedAt         time.Time  `json:"assigned_at"`
	UnassignedAt       *time.Time `json:"unassigned_at"`
	UnassignmentReason *string    `json:"unassignment_reason"`
	Notes              *string    `json:"notes"`

	ResourceName *string `db:"-" json:"resource_name,omitempty"`
	ProjectName  *string `db:"-" json:"project_name,omitempty"`
}

var AssignableResourceTypes = []string{"CRANE", "TRUCK", "EQUIPMENT", "PERSON"}

func IsAssignableResourceType(t string) bool {
	for _, v := range AssignableResourceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ExclusiveResourceType reports whether the type is subject to the
// single-active-assignment rule.
func ExclusiveResourceType(t string) bool {
	return t == "CRANE" || t == "TRUCK"
}
