package services

import (
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"

	"github.com/aarondl/null/v8"
)

func nullIntToPtr(v null.Int) *uint64 {
	if !v.Valid {
		return nil
	}
	id := uint64(v.Int)
	return &id
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func craneToDTO(e *entities.Crane) dto.CraneDTO {
	out := dto.CraneDTO{
		ID:                  e.ID,
		Name:                e.Name,
		Model:               e.Model,
		Type:                e.Type,
		SerialNo:            e.SerialNo,
		Status:              e.Status,
		CurrentLocationID:   e.CurrentLocationID,
		Notes:               e.Notes,
		PlateNo:             e.PlateNo,
		Tonnage:             e.Tonnage,
		MachineCategory:     e.MachineCategory,
		BrandModel:          e.BrandModel,
		ModelYear:           e.ModelYear,
		KmReading:           e.KmReading,
		EngineHours:         e.EngineHours,
		CurrentLocationText: e.CurrentLocationText,
		CreatedAt:           formatTime(e.CreatedAt),
		UpdatedAt:           formatTime(e.UpdatedAt),
	}
	if e.Location != nil {
		out.LocationName = &e.Location.Name
		out.LocationType = &e.Location.Type
	}
	return out
}

func truckToDTO(e *entities.Truck) dto.TruckDTO {
	out := dto.TruckDTO{
		ID:                e.ID,
		PlateNo:           e.PlateNo,
		Type:              e.Type,
		Model:             e.Model,
		Status:            e.Status,
		CurrentLocationID: e.CurrentLocationID,
		Notes:             e.Notes,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
	if e.Location != nil {
		out.LocationName = &e.Location.Name
		out.LocationType = &e.Location.Type
	}
	return out
}

func locationToDTO(e *entities.Location) dto.LocationDTO {
	return dto.LocationDTO{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		Address:   e.Address,
		City:      e.City,
		Notes:     e.Notes,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func customerToDTO(e *entities.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:        e.ID,
		Name:      e.Name,
		City:      e.City,
		Notes:     e.Notes,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func personToDTO(e *entities.Person) dto.PersonDTO {
	return dto.PersonDTO{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		Role:      e.Role,
		Status:    e.Status,
		Notes:     e.Notes,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func projectToDTO(e *entities.Project) dto.ProjectDTO {
	out := dto.ProjectDTO{
		ID:                   e.ID,
		Name:                 e.Name,
		CustomerID:           e.CustomerID,
		LocationID:           e.LocationID,
		StartDate:            formatDatePtr(e.StartDate),
		EndDate:              formatDatePtr(e.EndDate),
		ActualStartDate:      formatDatePtr(e.ActualStartDate),
		ActualEndDate:        formatDatePtr(e.ActualEndDate),
		Status:               e.Status,
		Notes:                e.Notes,
		ProjectEngineerID:    e.ProjectEngineerID,
		ProjectSiteManagerID: e.ProjectSiteManagerID,
		CreatedAt:            formatTime(e.CreatedAt),
		UpdatedAt:            formatTime(e.UpdatedAt),
	}
	if e.Customer != nil {
		out.CustomerName = &e.Customer.Name
		out.CustomerCity = e.Customer.City
	}
	if e.Location != nil {
		out.LocationName = &e.Location.Name
		out.LocationType = &e.Location.Type
	}
	return out
}

func movementToDTO(e *entities.MovementLog) dto.MovementLogDTO {
	return dto.MovementLogDTO{
		ID:               e.ID,
		ResourceType:     e.ResourceType,
		ResourceID:       e.ResourceID,
		FromLocationID:   e.FromLocationID,
		FromLocationName: e.FromLocationName,
		ToLocationID:     e.ToLocationID,
		ToLocationName:   e.ToLocationName,
		MovedAt:          e.MovedAt.Format(time.RFC3339),
		MovedBy:          e.MovedBy,
		MovedByName:      e.MovedByName,
		Notes:            e.Notes,
	}
}

func assignmentToDTO(e *entities.ProjectAssignment) dto.AssignmentDTO {
	return dto.AssignmentDTO{
		ID:                 e.ID,
		ProjectID:          e.ProjectID,
		ResourceType:       e.ResourceType,
		ResourceID:         e.ResourceID,
		ResourceName:       e.ResourceName,
		AssignedAt:         e.AssignedAt.Format(time.RFC3339),
		UnassignedAt:       formatTimePtr(e.UnassignedAt),
		UnassignmentReason: e.UnassignmentReason,
		Notes:              e.Notes,
	}
}

func equipmentTypeToDTO(e *entities.EquipmentType) dto.EquipmentTypeDTO {
	return dto.EquipmentTypeDTO{
		ID:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		Unit:      e.Unit,
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func equipmentItemToDTO(e *entities.EquipmentItem) dto.EquipmentItemDTO {
	out := dto.EquipmentItemDTO{
		ID:                e.ID,
		EquipmentTypeID:   e.EquipmentTypeID,
		SerialNo:          e.SerialNo,
		Status:            e.Status,
		CurrentLocationID: e.CurrentLocationID,
		OnTruckID:         e.OnTruckID,
		OwnerCraneID:      e.OwnerCraneID,
		Notes:             e.Notes,
		CreatedAt:         formatTime(e.CreatedAt),
	}
	if e.EquipmentType != nil {
		out.EquipmentTypeName = &e.EquipmentType.Name
		out.EquipmentTypeCategory = &e.EquipmentType.Category
		out.EquipmentUnit = e.EquipmentType.Unit
	}
	if e.Location != nil {
		out.LocationName = &e.Location.Name
	}
	if e.Truck != nil {
		out.TruckPlateNo = &e.Truck.PlateNo
	}
	if e.OwnerCrane != nil {
		out.OwnerCraneName = &e.OwnerCrane.Name
	}
	return out
}

func templateToDTO(e *entities.CraneConfigTemplate) dto.TemplateDTO {
	out := dto.TemplateDTO{
		ID:              e.ID,
		CraneModel:      e.CraneModel,
		ConfigName:      e.ConfigName,
		Description:     e.Description,
		DiagramFilePath: e.DiagramFilePath,
		CreatedAt:       formatTime(e.CreatedAt),
	}
	for i := range e.Items {
		out.Items = append(out.Items, templateItemToDTO(&e.Items[i]))
	}
	return out
}

func templateItemToDTO(e *entities.CraneConfigTemplateItem) dto.TemplateItemDTO {
	return dto.TemplateItemDTO{
		ID:                e.ID,
		TemplateID:        e.TemplateID,
		EquipmentTypeID:   e.EquipmentTypeID,
		EquipmentTypeName: e.EquipmentTypeName,
		Category:          e.Category,
		QuantityRequired:  e.QuantityRequired,
		OrderIndex:        e.OrderIndex,
	}
}

func projectConfigToDTO(e *entities.ProjectCraneConfig) dto.ProjectCraneConfigDTO {
	return dto.ProjectCraneConfigDTO{
		ID:               e.ID,
		ProjectID:        e.ProjectID,
		CraneID:          e.CraneID,
		CraneName:        e.CraneName,
		TemplateID:       e.TemplateID,
		TemplateName:     e.TemplateName,
		ConfiguredBy:     e.ConfiguredBy,
		ConfiguredByName: e.ConfiguredByName,
		ConfiguredAt:     e.ConfiguredAt.Format(time.RFC3339),
		Notes:            e.Notes,
	}
}
