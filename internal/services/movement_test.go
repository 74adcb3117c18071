package services

import (
	"context"
	"testing"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovementService(
	movementRepo *stubMovementRepo,
	craneRepo *stubCraneRepo,
	truckRepo *stubTruckRepo,
	equipmentRepo *stubEquipmentRepo,
	locationRepo *stubLocationRepo,
) MovementServiceInterface {
	return NewMovementService(&stubTxManager{}, movementRepo, craneRepo, truckRepo, equipmentRepo, locationRepo, zap.NewNop())
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok, "expected *apperrors.HttpError, got %T: %v", err, err)
	return httpErr.Code
}

func TestRecordMovementRejectsUnknownResourceType(t *testing.T) {
	svc := newMovementService(&stubMovementRepo{}, &stubCraneRepo{}, &stubTruckRepo{}, &stubEquipmentRepo{}, &stubLocationRepo{})

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "BULLDOZER",
		ResourceID:   1,
		ToLocationID: 2,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestRecordMovementRejectsMissingTargetLocation(t *testing.T) {
	locationRepo := &stubLocationRepo{} // every lookup misses
	svc := newMovementService(&stubMovementRepo{}, &stubCraneRepo{}, &stubTruckRepo{}, &stubEquipmentRepo{}, locationRepo)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   1,
		ToLocationID: 99,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "target location not found")
}

func TestRecordMovementResolvesFromLocationFromCrane(t *testing.T) {
	garage := uint64(5)
	site := uint64(7)

	var inserted *entities.MovementLog
	var movedCraneID, movedToID uint64

	movementRepo := &stubMovementRepo{
		insertFn: func(m *entities.MovementLog) (uint64, error) {
			inserted = m
			return 42, nil
		},
		findFn: func(id uint64) (*entities.MovementLog, error) {
			return &entities.MovementLog{
				ID:             id,
				ResourceType:   "CRANE",
				ResourceID:     3,
				FromLocationID: &garage,
				ToLocationID:   site,
				MovedAt:        time.Now(),
			}, nil
		},
	}
	craneRepo := &stubCraneRepo{
		findFn: func(id uint64) (*entities.Crane, error) {
			return &entities.Crane{ID: id, Name: "LTM 1100", CurrentLocationID: &garage}, nil
		},
		updateLocationFn: func(id, locationID uint64) error {
			movedCraneID, movedToID = id, locationID
			return nil
		},
	}
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id, Name: "Site"}, nil
		},
	}

	svc := newMovementService(movementRepo, craneRepo, &stubTruckRepo{}, &stubEquipmentRepo{}, locationRepo)

	out, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   3,
		ToLocationID: site,
	})

	require.NoError(t, err)
	require.NotNil(t, inserted)
	require.NotNil(t, inserted.FromLocationID)
	assert.Equal(t, garage, *inserted.FromLocationID, "from-location taken from the crane's current location")
	assert.Equal(t, uint64(3), movedCraneID)
	assert.Equal(t, site, movedToID)
	assert.Equal(t, uint64(42), out.ID)
}

func TestRecordMovementKeepsExplicitFromLocation(t *testing.T) {
	explicit := uint64(11)
	site := uint64(7)

	var inserted *entities.MovementLog
	movementRepo := &stubMovementRepo{
		insertFn: func(m *entities.MovementLog) (uint64, error) {
			inserted = m
			return 1, nil
		},
		findFn: func(id uint64) (*entities.MovementLog, error) {
			return &entities.MovementLog{ID: id, MovedAt: time.Now()}, nil
		},
	}
	truckRepo := &stubTruckRepo{
		findFn: func(id uint64) (*entities.Truck, error) {
			t.Fatal("truck must not be consulted when from_location_id is explicit")
			return nil, nil
		},
	}
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id}, nil
		},
	}

	svc := newMovementService(movementRepo, &stubCraneRepo{}, truckRepo, &stubEquipmentRepo{}, locationRepo)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType:   "TRUCK",
		ResourceID:     4,
		FromLocationID: &explicit,
		ToLocationID:   site,
	})

	require.NoError(t, err)
	require.NotNil(t, inserted.FromLocationID)
	assert.Equal(t, explicit, *inserted.FromLocationID)
}

func TestRecordMovementRejectsBadMovedAt(t *testing.T) {
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id}, nil
		},
	}
	craneRepo := &stubCraneRepo{
		findFn: func(id uint64) (*entities.Crane, error) {
			return &entities.Crane{ID: id}, nil
		},
	}
	svc := newMovementService(&stubMovementRepo{}, craneRepo, &stubTruckRepo{}, &stubEquipmentRepo{}, locationRepo)

	badTime := "31-12-2025"
	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   1,
		ToLocationID: 2,
		MovedAt:      &badTime,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestRecordMovementUpdatesEquipmentPlacement(t *testing.T) {
	depot := uint64(9)
	var relocatedItem, relocatedTo uint64

	equipmentRepo := &stubEquipmentRepo{
		findItemFn: func(id uint64) (*entities.EquipmentItem, error) {
			truckID := uint64(3)
			return &entities.EquipmentItem{ID: id, OnTruckID: &truckID}, nil
		},
		updateLocationFn: func(id, locationID uint64) error {
			relocatedItem, relocatedTo = id, locationID
			return nil
		},
	}
	movementRepo := &stubMovementRepo{
		insertFn: func(m *entities.MovementLog) (uint64, error) { return 8, nil },
		findFn: func(id uint64) (*entities.MovementLog, error) {
			return &entities.MovementLog{ID: id, MovedAt: time.Now()}, nil
		},
	}
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id}, nil
		},
	}

	svc := newMovementService(movementRepo, &stubCraneRepo{}, &stubTruckRepo{}, equipmentRepo, locationRepo)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "EQUIPMENT",
		ResourceID:   6,
		ToLocationID: depot,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(6), relocatedItem)
	assert.Equal(t, depot, relocatedTo)
}

func TestRecordMovementMissingResourceIs404(t *testing.T) {
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id}, nil
		},
	}
	svc := newMovementService(&stubMovementRepo{}, &stubCraneRepo{}, &stubTruckRepo{}, &stubEquipmentRepo{}, locationRepo)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   123,
		ToLocationID: 2,
	})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestRecordMovementFailedLocationUpdateSurfaces(t *testing.T) {
	garage := uint64(5)
	movementRepo := &stubMovementRepo{
		insertFn: func(m *entities.MovementLog) (uint64, error) { return 1, nil },
	}
	craneRepo := &stubCraneRepo{
		findFn: func(id uint64) (*entities.Crane, error) {
			return &entities.Crane{ID: id, CurrentLocationID: &garage}, nil
		},
		updateLocationFn: func(id, locationID uint64) error {
			return assert.AnError
		},
	}
	locationRepo := &stubLocationRepo{
		findFn: func(id uint64) (*entities.Location, error) {
			return &entities.Location{ID: id}, nil
		},
	}

	svc := newMovementService(movementRepo, craneRepo, &stubTruckRepo{}, &stubEquipmentRepo{}, locationRepo)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   3,
		ToLocationID: 7,
	})

	assert.ErrorIs(t, err, assert.AnError, "transaction callback error aborts the movement")
}

func TestHistoryRejectsUnknownResourceType(t *testing.T) {
	svc := newMovementService(&stubMovementRepo{}, &stubCraneRepo{}, &stubTruckRepo{}, &stubEquipmentRepo{}, &stubLocationRepo{})

	_, err := svc.History(context.Background(), "PERSON", 1)

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}
