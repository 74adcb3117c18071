package services

import (
	"context"
	"errors"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipmentTypes(ctx context.Context, filter types.Filter) ([]dto.EquipmentTypeDTO, uint64, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)

	GetEquipmentItems(ctx context.Context, filter types.Filter) ([]dto.EquipmentItemDTO, uint64, error)
	FindEquipmentItem(ctx context.Context, id uint64) (*dto.EquipmentItemDTO, error)
	CreateEquipmentItem(ctx context.Context, payload dto.CreateEquipmentItemDTO) (*dto.EquipmentItemDTO, error)
	SetEquipmentLocation(ctx context.Context, id uint64, payload dto.SetEquipmentLocationDTO) (*dto.EquipmentItemDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	locationRepo  repositories.LocationRepositoryInterface
	truckRepo     repositories.TruckRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	locationRepo repositories.LocationRepositoryInterface,
	truckRepo repositories.TruckRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		locationRepo:  locationRepo,
		truckRepo:     truckRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipmentTypes(ctx context.Context, filter types.Filter) ([]dto.EquipmentTypeDTO, uint64, error) {
	equipmentTypes, total, err := s.equipmentRepo.GetEquipmentTypes(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EquipmentTypeDTO, 0, len(equipmentTypes))
	for i := range equipmentTypes {
		out = append(out, equipmentTypeToDTO(&equipmentTypes[i]))
	}
	return out, total, nil
}

func (s *EquipmentService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	equipmentType := entities.EquipmentType{
		Name:     payload.Name,
		Category: payload.Category,
		Unit:     payload.Unit,
	}

	id, err := s.equipmentRepo.CreateEquipmentType(ctx, &equipmentType)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("equipment type with this name already exists")
		}
		return nil, err
	}

	created, err := s.equipmentRepo.FindEquipmentType(ctx, id)
	if err != nil {
		return nil, err
	}
	out := equipmentTypeToDTO(created)
	return &out, nil
}

func (s *EquipmentService) GetEquipmentItems(ctx context.Context, filter types.Filter) ([]dto.EquipmentItemDTO, uint64, error) {
	items, total, err := s.equipmentRepo.GetEquipmentItems(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EquipmentItemDTO, 0, len(items))
	for i := range items {
		out = append(out, equipmentItemToDTO(&items[i]))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipmentItem(ctx context.Context, id uint64) (*dto.EquipmentItemDTO, error) {
	item, err := s.equipmentRepo.FindEquipmentItem(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("equipment item not found")
		}
		return nil, err
	}
	out := equipmentItemToDTO(item)
	return &out, nil
}

func (s *EquipmentService) CreateEquipmentItem(ctx context.Context, payload dto.CreateEquipmentItemDTO) (*dto.EquipmentItemDTO, error) {
	locationID := nullIntToPtr(payload.CurrentLocationID)
	truckID := nullIntToPtr(payload.OnTruckID)
	if locationID != nil && truckID != nil {
		return nil, apperrors.NewBadRequestError("equipment cannot be both at a location and on a truck")
	}

	if _, err := s.equipmentRepo.FindEquipmentType(ctx, payload.EquipmentTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("equipment type not found")
		}
		return nil, err
	}

	status := "AVAILABLE"
	if payload.Status != nil {
		status = *payload.Status
	}

	item := entities.EquipmentItem{
		EquipmentTypeID:   payload.EquipmentTypeID,
		SerialNo:          payload.SerialNo,
		Status:            status,
		CurrentLocationID: locationID,
		OnTruckID:         truckID,
		OwnerCraneID:      nullIntToPtr(payload.OwnerCraneID),
		Notes:             payload.Notes,
	}

	id, err := s.equipmentRepo.CreateEquipmentItem(ctx, &item)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment item created", zap.Uint64("id", id), zap.Uint64("equipment_type_id", item.EquipmentTypeID))
	return s.FindEquipmentItem(ctx, id)
}

// SetEquipmentLocation places the item at a location, on a truck, or nowhere.
// Supplying both references is rejected before touching storage.
func (s *EquipmentService) SetEquipmentLocation(ctx context.Context, id uint64, payload dto.SetEquipmentLocationDTO) (*dto.EquipmentItemDTO, error) {
	locationID := nullIntToPtr(payload.CurrentLocationID)
	truckID := nullIntToPtr(payload.OnTruckID)
	if locationID != nil && truckID != nil {
		return nil, apperrors.NewBadRequestError("equipment cannot be both at a location and on a truck")
	}

	if locationID != nil {
		if _, err := s.locationRepo.FindLocation(ctx, *locationID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("location not found")
			}
			return nil, err
		}
	}
	if truckID != nil {
		if _, err := s.truckRepo.FindTruck(ctx, *truckID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("truck not found")
			}
			return nil, err
		}
	}

	if err := s.equipmentRepo.SetItemPlace(ctx, id, locationID, truckID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("equipment item not found")
		}
		return nil, err
	}

	return s.FindEquipmentItem(ctx, id)
}
