package services

import (
	"context"
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEquipmentService(equipmentRepo *stubEquipmentRepo, locationRepo *stubLocationRepo, truckRepo *stubTruckRepo) EquipmentServiceInterface {
	return NewEquipmentService(equipmentRepo, locationRepo, truckRepo, zap.NewNop())
}

func TestCreateEquipmentItemRejectsLocationAndTruck(t *testing.T) {
	svc := newEquipmentService(&stubEquipmentRepo{}, &stubLocationRepo{}, &stubTruckRepo{})

	_, err := svc.CreateEquipmentItem(context.Background(), dto.CreateEquipmentItemDTO{
		EquipmentTypeID:   1,
		CurrentLocationID: null.IntFrom(2),
		OnTruckID:         null.IntFrom(3),
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "both")
}

func TestCreateEquipmentItemRejectsUnknownType(t *testing.T) {
	svc := newEquipmentService(&stubEquipmentRepo{}, &stubLocationRepo{}, &stubTruckRepo{})

	_, err := svc.CreateEquipmentItem(context.Background(), dto.CreateEquipmentItemDTO{
		EquipmentTypeID: 99,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "equipment type not found")
}

func TestCreateEquipmentItemDefaultsStatus(t *testing.T) {
	var created *entities.EquipmentItem
	equipmentRepo := &stubEquipmentRepo{
		findTypeFn: func(id uint64) (*entities.EquipmentType, error) {
			return &entities.EquipmentType{ID: id, Name: "Counterweight 10t", Category: "COUNTERWEIGHT"}, nil
		},
		createItemFn: func(item *entities.EquipmentItem) (uint64, error) {
			created = item
			return 4, nil
		},
		findItemFn: func(id uint64) (*entities.EquipmentItem, error) {
			return &entities.EquipmentItem{ID: id, EquipmentTypeID: 1, Status: "AVAILABLE"}, nil
		},
	}
	svc := newEquipmentService(equipmentRepo, &stubLocationRepo{}, &stubTruckRepo{})

	out, err := svc.CreateEquipmentItem(context.Background(), dto.CreateEquipmentItemDTO{
		EquipmentTypeID: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "AVAILABLE", created.Status)
	assert.Equal(t, uint64(4), out.ID)
}

func TestSetEquipmentLocationRejectsLocationAndTruck(t *testing.T) {
	svc := newEquipmentService(&stubEquipmentRepo{}, &stubLocationRepo{}, &stubTruckRepo{})

	_, err := svc.SetEquipmentLocation(context.Background(), 1, dto.SetEquipmentLocationDTO{
		CurrentLocationID: null.IntFrom(2),
		OnTruckID:         null.IntFrom(3),
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestSetEquipmentLocationRejectsUnknownTruck(t *testing.T) {
	svc := newEquipmentService(&stubEquipmentRepo{}, &stubLocationRepo{}, &stubTruckRepo{})

	_, err := svc.SetEquipmentLocation(context.Background(), 1, dto.SetEquipmentLocationDTO{
		OnTruckID: null.IntFrom(3),
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "truck not found")
}

func TestSetEquipmentLocationMovesItemToTruck(t *testing.T) {
	var gotLocation, gotTruck *uint64
	equipmentRepo := &stubEquipmentRepo{
		setItemPlaceFn: func(id uint64, locationID, truckID *uint64) error {
			gotLocation, gotTruck = locationID, truckID
			return nil
		},
		findItemFn: func(id uint64) (*entities.EquipmentItem, error) {
			truckID := uint64(3)
			return &entities.EquipmentItem{ID: id, EquipmentTypeID: 1, Status: "AVAILABLE", OnTruckID: &truckID}, nil
		},
	}
	truckRepo := &stubTruckRepo{
		findFn: func(id uint64) (*entities.Truck, error) {
			return &entities.Truck{ID: id, PlateNo: "34 ABC 123"}, nil
		},
	}
	svc := newEquipmentService(equipmentRepo, &stubLocationRepo{}, truckRepo)

	out, err := svc.SetEquipmentLocation(context.Background(), 1, dto.SetEquipmentLocationDTO{
		OnTruckID: null.IntFrom(3),
	})

	require.NoError(t, err)
	assert.Nil(t, gotLocation)
	require.NotNil(t, gotTruck)
	assert.Equal(t, uint64(3), *gotTruck)
	require.NotNil(t, out.OnTruckID)
	assert.Equal(t, uint64(3), *out.OnTruckID)
}

func TestSetEquipmentLocationMissingItemIs404(t *testing.T) {
	equipmentRepo := &stubEquipmentRepo{
		setItemPlaceFn: func(id uint64, locationID, truckID *uint64) error {
			return apperrors.ErrNotFound
		},
	}
	svc := newEquipmentService(equipmentRepo, &stubLocationRepo{}, &stubTruckRepo{})

	_, err := svc.SetEquipmentLocation(context.Background(), 1, dto.SetEquipmentLocationDTO{})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}
