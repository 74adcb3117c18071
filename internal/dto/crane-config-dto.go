package dto

type CreateTemplateItemDTO struct {
	EquipmentTypeID  uint64 `json:"equipment_type_id" validate:"required,gt=0"`
	QuantityRequired int    `json:"quantity_required" validate:"required,gt=0"`
	OrderIndex       int    `json:"order_index"`
}

type CreateTemplateDTO struct {
	CraneModel      string                  `json:"crane_model" validate:"required"`
	ConfigName      string                  `json:"config_name" validate:"required"`
	Description     *string                 `json:"description"`
	DiagramFilePath *string                 `json:"diagram_file_path"`
	Items           []CreateTemplateItemDTO `json:"items" validate:"omitempty,dive"`
}

type TemplateDTO struct {
	ID              uint64  `json:"id"`
	CraneModel      string  `json:"crane_model"`
	ConfigName      string  `json:"config_name"`
	Description     *string `json:"description,omitempty"`
	DiagramFilePath *string `json:"diagram_file_path,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`

	Items []TemplateItemDTO `json:"items,omitempty"`
}

type TemplateItemDTO struct {
	ID                uint64  `json:"id"`
	TemplateID        uint64  `json:"template_id"`
	EquipmentTypeID   uint64  `json:"equipment_type_id"`
	EquipmentTypeName *string `json:"equipment_type_name,omitempty"`
	Category          *string `json:"category,omitempty"`
	QuantityRequired  int     `json:"quantity_required"`
	OrderIndex        int     `json:"order_index"`
}

// AvailabilityItemDTO is the per-equipment-type verdict of the availability
// check: how many units the template needs, how many are free, and the free
// units themselves as candidates for the operator to pick from.
type AvailabilityItemDTO struct {
	EquipmentTypeID   uint64             `json:"equipment_type_id"`
	EquipmentTypeName string             `json:"equipment_type_name"`
	QuantityRequired  int                `json:"quantity_required"`
	QuantityAvailable int                `json:"quantity_available"`
	IsAvailable       bool               `json:"is_available"`
	MissingQuantity   int                `json:"missing_quantity"`
	AvailableItems    []EquipmentItemDTO `json:"available_items"`
}

type AvailabilityResultDTO struct {
	TemplateID   uint64                `json:"template_id"`
	TemplateName string                `json:"template_name"`
	Items        []AvailabilityItemDTO `json:"items"`
	AllAvailable bool                  `json:"all_available"`
}

type AssignProjectConfigDTO struct {
	CraneID      uint64  `json:"crane_id" validate:"required,gt=0"`
	TemplateID   uint64  `json:"template_id" validate:"required,gt=0"`
	ConfiguredBy *uint64 `json:"configured_by"`
	Notes        *string `json:"notes"`
}

type ProjectCraneConfigDTO struct {
	ID               uint64  `json:"id"`
	ProjectID        uint64  `json:"project_id"`
	CraneID          uint64  `json:"crane_id"`
	CraneName        *string `json:"crane_name,omitempty"`
	TemplateID       uint64  `json:"template_id"`
	TemplateName     *string `json:"template_name,omitempty"`
	ConfiguredBy     *uint64 `json:"configured_by,omitempty"`
	ConfiguredByName *string `json:"configured_by_name,omitempty"`
	ConfiguredAt     string  `json:"configured_at"`
	Notes            *string `json:"notes,omitempty"`
}
