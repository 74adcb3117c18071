package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovementServiceInterface interface {
	GetMovements(ctx context.Context, filter types.Filter) ([]dto.MovementLogDTO, uint64, error)
	FindMovement(ctx context.Context, id uint64) (*dto.MovementLogDTO, error)
	RecordMovement(ctx context.Context, payload dto.CreateMovementDTO) (*dto.MovementLogDTO, error)
	History(ctx context.Context, resourceType string, resourceID uint64) ([]dto.MovementLogDTO, error)
}

type MovementService struct {
	txManager     repositories.TxManagerInterface
	movementRepo  repositories.MovementRepositoryInterface
	craneRepo     repositories.CraneRepositoryInterface
	truckRepo     repositories.TruckRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	locationRepo  repositories.LocationRepositoryInterface
	logger        *zap.Logger
}

func NewMovementService(
	txManager repositories.TxManagerInterface,
	movementRepo repositories.MovementRepositoryInterface,
	craneRepo repositories.CraneRepositoryInterface,
	truckRepo repositories.TruckRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	locationRepo repositories.LocationRepositoryInterface,
	logger *zap.Logger,
) MovementServiceInterface {
	return &MovementService{
		txManager:     txManager,
		movementRepo:  movementRepo,
		craneRepo:     craneRepo,
		truckRepo:     truckRepo,
		equipmentRepo: equipmentRepo,
		locationRepo:  locationRepo,
		logger:        logger,
	}
}

func (s *MovementService) GetMovements(ctx context.Context, filter types.Filter) ([]dto.MovementLogDTO, uint64, error) {
	movements, total, err := s.movementRepo.GetMovements(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.MovementLogDTO, 0, len(movements))
	for i := range movements {
		out = append(out, movementToDTO(&movements[i]))
	}
	return out, total, nil
}

func (s *MovementService) FindMovement(ctx context.Context, id uint64) (*dto.MovementLogDTO, error) {
	movement, err := s.movementRepo.FindMovement(ctx, id)
	if err != nil {
		return nil, err
	}
	out := movementToDTO(movement)
	return &out, nil
}

// RecordMovement appends a ledger entry and updates the resource's current
// location in one transaction. The from-location, when the caller omits it,
// is read from the resource itself.
func (s *MovementService) RecordMovement(ctx context.Context, payload dto.CreateMovementDTO) (*dto.MovementLogDTO, error) {
	if !entities.IsMovableResourceType(payload.ResourceType) {
		return nil, apperrors.NewBadRequestError("unknown resource type")
	}

	if _, err := s.locationRepo.FindLocation(ctx, payload.ToLocationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("target location not found")
		}
		return nil, err
	}

	fromLocationID, err := s.resolveFromLocation(ctx, payload)
	if err != nil {
		return nil, err
	}

	movedAt := time.Now()
	if payload.MovedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *payload.MovedAt)
		if err != nil {
			return nil, apperrors.NewBadRequestError("moved_at must be RFC 3339")
		}
		movedAt = parsed
	}

	entry := entities.MovementLog{
		ResourceType:   payload.ResourceType,
		ResourceID:     payload.ResourceID,
		FromLocationID: fromLocationID,
		ToLocationID:   payload.ToLocationID,
		MovedAt:        movedAt,
		MovedBy:        payload.MovedBy,
		Notes:          payload.Notes,
	}

	var movementID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.movementRepo.InsertTx(ctx, tx, &entry)
		if err != nil {
			return err
		}
		movementID = id

		switch payload.ResourceType {
		case "CRANE":
			return s.craneRepo.UpdateLocation(ctx, tx, payload.ResourceID, payload.ToLocationID)
		case "TRUCK":
			return s.truckRepo.UpdateLocation(ctx, tx, payload.ResourceID, payload.ToLocationID)
		case "EQUIPMENT":
			return s.equipmentRepo.UpdateItemLocationTx(ctx, tx, payload.ResourceID, payload.ToLocationID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resource moved",
		zap.String("resource_type", payload.ResourceType),
		zap.Uint64("resource_id", payload.ResourceID),
		zap.Uint64("to_location_id", payload.ToLocationID),
	)

	return s.FindMovement(ctx, movementID)
}

func (s *MovementService) resolveFromLocation(ctx context.Context, payload dto.CreateMovementDTO) (*uint64, error) {
	if payload.FromLocationID != nil {
		return payload.FromLocationID, nil
	}

	switch payload.ResourceType {
	case "CRANE":
		crane, err := s.craneRepo.FindCrane(ctx, payload.ResourceID)
		if err != nil {
			return nil, notFoundAs(err, "crane not found")
		}
		return crane.CurrentLocationID, nil
	case "TRUCK":
		truck, err := s.truckRepo.FindTruck(ctx, payload.ResourceID)
		if err != nil {
			return nil, notFoundAs(err, "truck not found")
		}
		return truck.CurrentLocationID, nil
	case "EQUIPMENT":
		item, err := s.equipmentRepo.FindEquipmentItem(ctx, payload.ResourceID)
		if err != nil {
			return nil, notFoundAs(err, "equipment item not found")
		}
		return item.CurrentLocationID, nil
	}
	return nil, apperrors.NewBadRequestError("unknown resource type")
}

func notFoundAs(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewHttpError(http.StatusNotFound, message, err, nil)
	}
	return err
}

func (s *MovementService) History(ctx context.Context, resourceType string, resourceID uint64) ([]dto.MovementLogDTO, error) {
	if !entities.IsMovableResourceType(resourceType) {
		return nil, apperrors.NewBadRequestError("unknown resource type")
	}

	movements, err := s.movementRepo.History(ctx, resourceType, resourceID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementLogDTO, 0, len(movements))
	for i := range movements {
		out = append(out, movementToDTO(&movements[i]))
	}
	return out, nil
}
