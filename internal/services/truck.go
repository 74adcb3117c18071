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

type TruckServiceInterface interface {
	GetTrucks(ctx context.Context, filter types.Filter) ([]dto.TruckDTO, uint64, error)
	FindTruck(ctx context.Context, id uint64) (*dto.TruckDTO, error)
	CreateTruck(ctx context.Context, payload dto.CreateTruckDTO) (*dto.TruckDTO, error)
	UpdateTruck(ctx context.Context, id uint64, payload dto.UpdateTruckDTO) (*dto.TruckDTO, error)
	DeleteTruck(ctx context.Context, id uint64) error
}

type TruckService struct {
	truckRepo     repositories.TruckRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewTruckService(
	truckRepo repositories.TruckRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) TruckServiceInterface {
	return &TruckService{
		truckRepo:     truckRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *TruckService) GetTrucks(ctx context.Context, filter types.Filter) ([]dto.TruckDTO, uint64, error) {
	trucks, total, err := s.truckRepo.GetTrucks(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.TruckDTO, 0, len(trucks))
	for i := range trucks {
		out = append(out, truckToDTO(&trucks[i]))
	}
	return out, total, nil
}

// FindTruck returns the truck together with the equipment currently loaded
// on it.
func (s *TruckService) FindTruck(ctx context.Context, id uint64) (*dto.TruckDTO, error) {
	truck, err := s.truckRepo.FindTruck(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("truck not found")
		}
		return nil, err
	}

	out := truckToDTO(truck)

	equipment, err := s.equipmentRepo.ItemsOnTruck(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range equipment {
		out.Equipment = append(out.Equipment, equipmentItemToDTO(&equipment[i]))
	}

	return &out, nil
}

func (s *TruckService) CreateTruck(ctx context.Context, payload dto.CreateTruckDTO) (*dto.TruckDTO, error) {
	status := "ACTIVE"
	if payload.Status != nil {
		status = *payload.Status
	}

	truck := entities.Truck{
		PlateNo:           payload.PlateNo,
		Type:              payload.Type,
		Model:             payload.Model,
		Status:            status,
		CurrentLocationID: nullIntToPtr(payload.CurrentLocationID),
		Notes:             payload.Notes,
	}

	id, err := s.truckRepo.CreateTruck(ctx, &truck)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("truck with this plate already exists")
		}
		return nil, err
	}

	s.logger.Info("truck created", zap.Uint64("id", id), zap.String("plate_no", truck.PlateNo))
	return s.FindTruck(ctx, id)
}

func (s *TruckService) UpdateTruck(ctx context.Context, id uint64, payload dto.UpdateTruckDTO) (*dto.TruckDTO, error) {
	truck := entities.Truck{
		PlateNo:           payload.PlateNo,
		Type:              payload.Type,
		Model:             payload.Model,
		Status:            payload.Status,
		CurrentLocationID: nullIntToPtr(payload.CurrentLocationID),
		Notes:             payload.Notes,
	}

	if err := s.truckRepo.UpdateTruck(ctx, id, &truck); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("truck not found")
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("truck with this plate already exists")
		}
		return nil, err
	}

	return s.FindTruck(ctx, id)
}

func (s *TruckService) DeleteTruck(ctx context.Context, id uint64) error {
	if err := s.truckRepo.DeleteTruck(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("truck not found")
		}
		return err
	}
	s.logger.Info("truck deleted", zap.Uint64("id", id))
	return nil
}
