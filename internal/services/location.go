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

type LocationServiceInterface interface {
	GetLocations(ctx context.Context, filter types.Filter) ([]dto.LocationDTO, uint64, error)
	FindLocation(ctx context.Context, id uint64) (*dto.LocationDTO, error)
	CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) (*dto.LocationDTO, error)
	UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) (*dto.LocationDTO, error)
	DeleteLocation(ctx context.Context, id uint64) error
	LocationResources(ctx context.Context, id uint64) (*dto.LocationResourcesDTO, error)
}

type LocationService struct {
	locationRepo  repositories.LocationRepositoryInterface
	craneRepo     repositories.CraneRepositoryInterface
	truckRepo     repositories.TruckRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewLocationService(
	locationRepo repositories.LocationRepositoryInterface,
	craneRepo repositories.CraneRepositoryInterface,
	truckRepo repositories.TruckRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) LocationServiceInterface {
	return &LocationService{
		locationRepo:  locationRepo,
		craneRepo:     craneRepo,
		truckRepo:     truckRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *LocationService) GetLocations(ctx context.Context, filter types.Filter) ([]dto.LocationDTO, uint64, error) {
	locations, total, err := s.locationRepo.GetLocations(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.LocationDTO, 0, len(locations))
	for i := range locations {
		out = append(out, locationToDTO(&locations[i]))
	}
	return out, total, nil
}

func (s *LocationService) FindLocation(ctx context.Context, id uint64) (*dto.LocationDTO, error) {
	location, err := s.locationRepo.FindLocation(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		return nil, err
	}
	out := locationToDTO(location)
	return &out, nil
}

func (s *LocationService) CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) (*dto.LocationDTO, error) {
	location := entities.Location{
		Name:    payload.Name,
		Type:    payload.Type,
		Address: payload.Address,
		City:    payload.City,
		Notes:   payload.Notes,
	}

	id, err := s.locationRepo.CreateLocation(ctx, &location)
	if err != nil {
		return nil, err
	}

	s.logger.Info("location created", zap.Uint64("id", id), zap.String("name", location.Name))
	return s.FindLocation(ctx, id)
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) (*dto.LocationDTO, error) {
	location := entities.Location{
		Name:    payload.Name,
		Type:    payload.Type,
		Address: payload.Address,
		City:    payload.City,
		Notes:   payload.Notes,
	}

	if err := s.locationRepo.UpdateLocation(ctx, id, &location); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		return nil, err
	}

	return s.FindLocation(ctx, id)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uint64) error {
	if err := s.locationRepo.DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("location not found")
		}
		return err
	}
	s.logger.Info("location deleted", zap.Uint64("id", id))
	return nil
}

// LocationResources lists the cranes, trucks and equipment currently at the
// location.
func (s *LocationService) LocationResources(ctx context.Context, id uint64) (*dto.LocationResourcesDTO, error) {
	if _, err := s.locationRepo.FindLocation(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		return nil, err
	}

	byLocation := types.Filter{Filter: map[string]interface{}{"current_location_id": id}}

	cranes, _, err := s.craneRepo.GetCranes(ctx, byLocation)
	if err != nil {
		return nil, err
	}
	trucks, _, err := s.truckRepo.GetTrucks(ctx, byLocation)
	if err != nil {
		return nil, err
	}
	equipment, _, err := s.equipmentRepo.GetEquipmentItems(ctx, byLocation)
	if err != nil {
		return nil, err
	}

	out := dto.LocationResourcesDTO{
		Cranes:    make([]dto.CraneDTO, 0, len(cranes)),
		Trucks:    make([]dto.TruckDTO, 0, len(trucks)),
		Equipment: make([]dto.EquipmentItemDTO, 0, len(equipment)),
	}
	for i := range cranes {
		out.Cranes = append(out.Cranes, craneToDTO(&cranes[i]))
	}
	for i := range trucks {
		out.Trucks = append(out.Trucks, truckToDTO(&trucks[i]))
	}
	for i := range equipment {
		out.Equipment = append(out.Equipment, equipmentItemToDTO(&equipment[i]))
	}

	return &out, nil
}
