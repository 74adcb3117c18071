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

type CraneServiceInterface interface {
	GetCranes(ctx context.Context, filter types.Filter) ([]dto.CraneDTO, uint64, error)
	FindCrane(ctx context.Context, id uint64) (*dto.CraneDTO, error)
	CreateCrane(ctx context.Context, payload dto.CreateCraneDTO) (*dto.CraneDTO, error)
	UpdateCrane(ctx context.Context, id uint64, payload dto.UpdateCraneDTO) (*dto.CraneDTO, error)
	DeleteCrane(ctx context.Context, id uint64) error
}

type CraneService struct {
	craneRepo     repositories.CraneRepositoryInterface
	movementRepo  repositories.MovementRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewCraneService(
	craneRepo repositories.CraneRepositoryInterface,
	movementRepo repositories.MovementRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) CraneServiceInterface {
	return &CraneService{
		craneRepo:     craneRepo,
		movementRepo:  movementRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *CraneService) GetCranes(ctx context.Context, filter types.Filter) ([]dto.CraneDTO, uint64, error) {
	cranes, total, err := s.craneRepo.GetCranes(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.CraneDTO, 0, len(cranes))
	for i := range cranes {
		out = append(out, craneToDTO(&cranes[i]))
	}
	return out, total, nil
}

// FindCrane returns the crane card: the crane itself, its movement history
// and the equipment items it owns.
func (s *CraneService) FindCrane(ctx context.Context, id uint64) (*dto.CraneDTO, error) {
	crane, err := s.craneRepo.FindCrane(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("crane not found")
		}
		return nil, err
	}

	out := craneToDTO(crane)

	movements, err := s.movementRepo.History(ctx, "CRANE", id)
	if err != nil {
		return nil, err
	}
	for i := range movements {
		out.Movements = append(out.Movements, movementToDTO(&movements[i]))
	}

	inventory, err := s.equipmentRepo.ItemsByOwnerCrane(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range inventory {
		out.Inventory = append(out.Inventory, equipmentItemToDTO(&inventory[i]))
	}

	return &out, nil
}

func (s *CraneService) CreateCrane(ctx context.Context, payload dto.CreateCraneDTO) (*dto.CraneDTO, error) {
	if !entities.IsValidCraneType(payload.Type) {
		return nil, apperrors.NewBadRequestError("unknown crane type")
	}

	status := "ACTIVE"
	if payload.Status != nil {
		status = *payload.Status
	}

	crane := entities.Crane{
		Name:                payload.Name,
		Model:               payload.Model,
		Type:                payload.Type,
		SerialNo:            payload.SerialNo,
		Status:              status,
		CurrentLocationID:   nullIntToPtr(payload.CurrentLocationID),
		Notes:               payload.Notes,
		PlateNo:             payload.PlateNo,
		Tonnage:             payload.Tonnage,
		MachineCategory:     payload.MachineCategory,
		BrandModel:          payload.BrandModel,
		ModelYear:           payload.ModelYear,
		KmReading:           payload.KmReading,
		EngineHours:         payload.EngineHours,
		CurrentLocationText: payload.CurrentLocationText,
	}

	id, err := s.craneRepo.CreateCrane(ctx, &crane)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("crane with this name or plate already exists")
		}
		return nil, err
	}

	s.logger.Info("crane created", zap.Uint64("id", id), zap.String("name", crane.Name))
	return s.FindCrane(ctx, id)
}

func (s *CraneService) UpdateCrane(ctx context.Context, id uint64, payload dto.UpdateCraneDTO) (*dto.CraneDTO, error) {
	if !entities.IsValidCraneType(payload.Type) {
		return nil, apperrors.NewBadRequestError("unknown crane type")
	}

	crane := entities.Crane{
		Name:                payload.Name,
		Model:               payload.Model,
		Type:                payload.Type,
		SerialNo:            payload.SerialNo,
		Status:              payload.Status,
		CurrentLocationID:   nullIntToPtr(payload.CurrentLocationID),
		Notes:               payload.Notes,
		PlateNo:             payload.PlateNo,
		Tonnage:             payload.Tonnage,
		MachineCategory:     payload.MachineCategory,
		BrandModel:          payload.BrandModel,
		ModelYear:           payload.ModelYear,
		KmReading:           payload.KmReading,
		EngineHours:         payload.EngineHours,
		CurrentLocationText: payload.CurrentLocationText,
	}

	if err := s.craneRepo.UpdateCrane(ctx, id, &crane); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("crane not found")
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("crane with this name or plate already exists")
		}
		return nil, err
	}

	return s.FindCrane(ctx, id)
}

func (s *CraneService) DeleteCrane(ctx context.Context, id uint64) error {
	if err := s.craneRepo.DeleteCrane(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("crane not found")
		}
		return err
	}
	s.logger.Info("crane deleted", zap.Uint64("id", id))
	return nil
}
