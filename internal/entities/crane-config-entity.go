package entities

import "time"

type CraneConfigTemplate struct {
	ID              uint64     `json:"id"`
	CraneModel      string     `json:"crane_model"`
	ConfigName      string     `json:"config_name"`
	Description     *string    `json:"description"`
	DiagramFilePath *string    `json:"diagram_file_path"`
	CreatedAt       *time.Time `json:"created_at"`

	Items []CraneConfigTemplateItem `db:"-" json:"items,omitempty"`
}

type CraneConfigTemplateItem struct {
	ID               uint64 `json:"id"`
	TemplateID       uint64 `json:"template_id"`
	EquipmentTypeID  uint64 `json:"equipment_type_id"`
	QuantityRequired int    `json:"quantity_required"`
	OrderIndex       int    `json:"order_index"`

	EquipmentTypeName *string `db:"-" json:"equipment_type_name,omitempty"`
	Category          *string `db:"-" json:"category,omitempty"`
}

type ProjectCraneConfig struct {
	ID           uint64    `json:"id"`
	ProjectID    uint64    `json:"project_id"`
	CraneID      uint64    `json:"crane_id"`
	TemplateID   uint64    `json:"template_id"`
	ConfiguredBy *uint64   `json:"configured_by"`
	ConfiguredAt time.Time `json:"configured_at"`
	Notes        *string   `json:"notes"`

	CraneName        *string `db:"-" json:"crane_name,omitempty"`
	TemplateName     *string `db:"-" json:"template_name,omitempty"`
	ConfiguredByName *string `db:"-" json:"configured_by_name,omitempty"`
}
