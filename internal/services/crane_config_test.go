package services

import (
	"context"
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConfigService(configRepo *stubConfigRepo, equipmentRepo *stubEquipmentRepo) CraneConfigServiceInterface {
	return NewCraneConfigService(
		&stubTxManager{},
		configRepo,
		equipmentRepo,
		&stubProjectRepo{},
		&stubCraneRepo{},
		&stubFileStorage{},
		zap.NewNop(),
	)
}

func availableItems(n int, typeID uint64) []entities.EquipmentItem {
	items := make([]entities.EquipmentItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entities.EquipmentItem{
			ID:              uint64(i + 1),
			EquipmentTypeID: typeID,
			Status:          "AVAILABLE",
		})
	}
	return items
}

func TestCheckAvailabilityCountsMissingUnits(t *testing.T) {
	boomName := "Main Boom Section 12m"
	jibName := "Lattice Jib 18m"

	configRepo := &stubConfigRepo{
		findTemplateFn: func(id uint64) (*entities.CraneConfigTemplate, error) {
			return &entities.CraneConfigTemplate{ID: id, CraneModel: "LTM 1100", ConfigName: "Long Boom"}, nil
		},
		templateItemsFn: func(templateID uint64) ([]entities.CraneConfigTemplateItem, error) {
			return []entities.CraneConfigTemplateItem{
				{ID: 1, TemplateID: templateID, EquipmentTypeID: 10, QuantityRequired: 2, EquipmentTypeName: &boomName},
				{ID: 2, TemplateID: templateID, EquipmentTypeID: 20, QuantityRequired: 4, EquipmentTypeName: &jibName},
			}, nil
		},
	}
	equipmentRepo := &stubEquipmentRepo{
		availableByTypeFn: func(typeID uint64) ([]entities.EquipmentItem, error) {
			switch typeID {
			case 10:
				return availableItems(3, typeID), nil
			case 20:
				return availableItems(1, typeID), nil
			}
			return nil, nil
		},
	}

	svc := newConfigService(configRepo, equipmentRepo)

	result, err := svc.CheckAvailability(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), result.TemplateID)
	assert.Equal(t, "Long Boom", result.TemplateName)
	assert.False(t, result.AllAvailable)
	require.Len(t, result.Items, 2)

	boom := result.Items[0]
	assert.Equal(t, boomName, boom.EquipmentTypeName)
	assert.Equal(t, 2, boom.QuantityRequired)
	assert.Equal(t, 3, boom.QuantityAvailable)
	assert.True(t, boom.IsAvailable)
	assert.Equal(t, 0, boom.MissingQuantity)
	assert.Len(t, boom.AvailableItems, 3)

	jib := result.Items[1]
	assert.Equal(t, 4, jib.QuantityRequired)
	assert.Equal(t, 1, jib.QuantityAvailable)
	assert.False(t, jib.IsAvailable)
	assert.Equal(t, 3, jib.MissingQuantity)
}

func TestCheckAvailabilityAllSatisfied(t *testing.T) {
	configRepo := &stubConfigRepo{
		findTemplateFn: func(id uint64) (*entities.CraneConfigTemplate, error) {
			return &entities.CraneConfigTemplate{ID: id, ConfigName: "Standard"}, nil
		},
		templateItemsFn: func(templateID uint64) ([]entities.CraneConfigTemplateItem, error) {
			return []entities.CraneConfigTemplateItem{
				{ID: 1, TemplateID: templateID, EquipmentTypeID: 10, QuantityRequired: 1},
			}, nil
		},
	}
	equipmentRepo := &stubEquipmentRepo{
		availableByTypeFn: func(typeID uint64) ([]entities.EquipmentItem, error) {
			return availableItems(1, typeID), nil
		},
	}

	svc := newConfigService(configRepo, equipmentRepo)

	result, err := svc.CheckAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, result.AllAvailable)
}

func TestCheckAvailabilityMissingTemplateIs404(t *testing.T) {
	svc := newConfigService(&stubConfigRepo{}, &stubEquipmentRepo{})

	_, err := svc.CheckAvailability(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestCreateTemplateDefaultsItemOrderToPosition(t *testing.T) {
	var captured []entities.CraneConfigTemplateItem
	configRepo := &stubConfigRepo{
		createTemplateFn: func(template *entities.CraneConfigTemplate) (uint64, error) {
			return 5, nil
		},
		createItemFn: func(item *entities.CraneConfigTemplateItem) (uint64, error) {
			captured = append(captured, *item)
			return uint64(len(captured)), nil
		},
		findTemplateFn: func(id uint64) (*entities.CraneConfigTemplate, error) {
			return &entities.CraneConfigTemplate{ID: id, CraneModel: "LTM 1100", ConfigName: "Long Boom"}, nil
		},
	}

	svc := newConfigService(configRepo, &stubEquipmentRepo{})

	_, err := svc.CreateTemplate(context.Background(), dto.CreateTemplateDTO{
		CraneModel: "LTM 1100",
		ConfigName: "Long Boom",
		Items: []dto.CreateTemplateItemDTO{
			{EquipmentTypeID: 10, QuantityRequired: 2},
			{EquipmentTypeID: 20, QuantityRequired: 1},
			{EquipmentTypeID: 30, QuantityRequired: 1, OrderIndex: 9},
		},
	})

	require.NoError(t, err)
	require.Len(t, captured, 3)
	assert.Equal(t, uint64(5), captured[0].TemplateID)
	assert.Equal(t, 0, captured[0].OrderIndex)
	assert.Equal(t, 1, captured[1].OrderIndex, "zero order index falls back to list position")
	assert.Equal(t, 9, captured[2].OrderIndex, "explicit order index wins")
}

func TestAssignProjectConfigValidatesReferences(t *testing.T) {
	svc := newConfigService(&stubConfigRepo{}, &stubEquipmentRepo{})

	_, err := svc.AssignProjectConfig(context.Background(), 1, dto.AssignProjectConfigDTO{
		CraneID:    2,
		TemplateID: 3,
	})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err), "missing project reported first")
}
