package entities

import "time"

// MovementLog rows are append-only: no operation updates or deletes them.
type MovementLog struct {
	ID             uint64    `json:"id"`
	ResourceType   string    `json:"resource_type"`
	ResourceID     uint64    `json:"resource_id"`
	FromLocationID *uint64   `json:"from_location_id"`
	ToLocationID   uint64    `json:"to_location_id"`
	MovedAt        time.Time `json:"moved_at"`
	MovedBy        *uint64   `json:"moved_by"`
	Notes          *string   `json:"notes"`

	FromLocationName *string `db:"-" json:"from_location_name,omitempty"`
	ToLocationName   *string `db:"-" json:"to_location_name,omitempty"`
	MovedByName      *string `db:"-" json:"moved_by_name,omitempty"`
}

// Resource types that can appear in the movement ledger.
var MovableResourceTypes = []string{"CRANE", "TRUCK", "EQUIPMENT"}

func IsMovableResourceType(t string) bool {
	for _, v := range MovableResourceTypes {
		if v == t {
			return true
		}
	}
	return false
}
