package services

import (
	"context"
	"errors"
	"io"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/filestorage"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CraneConfigServiceInterface interface {
	GetTemplates(ctx context.Context, craneModel string) ([]dto.TemplateDTO, error)
	FindTemplate(ctx context.Context, id uint64) (*dto.TemplateDTO, error)
	CreateTemplate(ctx context.Context, payload dto.CreateTemplateDTO) (*dto.TemplateDTO, error)
	DeleteTemplate(ctx context.Context, id uint64) error
	UploadDiagram(ctx context.Context, id uint64, file io.Reader, fileName string) (*dto.TemplateDTO, error)
	CheckAvailability(ctx context.Context, templateID uint64) (*dto.AvailabilityResultDTO, error)

	GetProjectConfigs(ctx context.Context, projectID uint64) ([]dto.ProjectCraneConfigDTO, error)
	AssignProjectConfig(ctx context.Context, projectID uint64, payload dto.AssignProjectConfigDTO) (*dto.ProjectCraneConfigDTO, error)
}

type CraneConfigService struct {
	txManager     repositories.TxManagerInterface
	configRepo    repositories.CraneConfigRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	projectRepo   repositories.ProjectRepositoryInterface
	craneRepo     repositories.CraneRepositoryInterface
	fileStorage   filestorage.FileStorageInterface
	logger        *zap.Logger
}

func NewCraneConfigService(
	txManager repositories.TxManagerInterface,
	configRepo repositories.CraneConfigRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	craneRepo repositories.CraneRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) CraneConfigServiceInterface {
	return &CraneConfigService{
		txManager:     txManager,
		configRepo:    configRepo,
		equipmentRepo: equipmentRepo,
		projectRepo:   projectRepo,
		craneRepo:     craneRepo,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

func (s *CraneConfigService) GetTemplates(ctx context.Context, craneModel string) ([]dto.TemplateDTO, error) {
	templates, err := s.configRepo.GetTemplates(ctx, craneModel)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TemplateDTO, 0, len(templates))
	for i := range templates {
		out = append(out, templateToDTO(&templates[i]))
	}
	return out, nil
}

func (s *CraneConfigService) FindTemplate(ctx context.Context, id uint64) (*dto.TemplateDTO, error) {
	template, err := s.configRepo.FindTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("template not found")
		}
		return nil, err
	}

	items, err := s.configRepo.TemplateItems(ctx, id)
	if err != nil {
		return nil, err
	}
	template.Items = items

	out := templateToDTO(template)
	return &out, nil
}

// CreateTemplate writes the template and its item list in one transaction so
// a failed item insert never leaves a half-defined configuration behind.
func (s *CraneConfigService) CreateTemplate(ctx context.Context, payload dto.CreateTemplateDTO) (*dto.TemplateDTO, error) {
	template := entities.CraneConfigTemplate{
		CraneModel:      payload.CraneModel,
		ConfigName:      payload.ConfigName,
		Description:     payload.Description,
		DiagramFilePath: payload.DiagramFilePath,
	}

	var templateID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.configRepo.CreateTemplateTx(ctx, tx, &template)
		if err != nil {
			return err
		}
		templateID = id

		for i, item := range payload.Items {
			orderIndex := item.OrderIndex
			if orderIndex == 0 {
				orderIndex = i
			}
			_, err := s.configRepo.CreateTemplateItemTx(ctx, tx, &entities.CraneConfigTemplateItem{
				TemplateID:       id,
				EquipmentTypeID:  item.EquipmentTypeID,
				QuantityRequired: item.QuantityRequired,
				OrderIndex:       orderIndex,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("configuration with this name already exists for the crane model")
		}
		return nil, err
	}

	s.logger.Info("config template created",
		zap.Uint64("id", templateID),
		zap.String("crane_model", template.CraneModel),
		zap.String("config_name", template.ConfigName),
	)
	return s.FindTemplate(ctx, templateID)
}

func (s *CraneConfigService) DeleteTemplate(ctx context.Context, id uint64) error {
	if err := s.configRepo.DeleteTemplate(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("template not found")
		}
		return err
	}
	return nil
}

func (s *CraneConfigService) UploadDiagram(ctx context.Context, id uint64, file io.Reader, fileName string) (*dto.TemplateDTO, error) {
	if _, err := s.configRepo.FindTemplate(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("template not found")
		}
		return nil, err
	}

	path, err := s.fileStorage.Save(file, fileName, "diagrams")
	if err != nil {
		return nil, err
	}

	if err := s.configRepo.SetTemplateDiagram(ctx, id, path); err != nil {
		return nil, err
	}
	return s.FindTemplate(ctx, id)
}

// CheckAvailability compares a template's requirements against the pool of
// AVAILABLE equipment items. Items already placed somewhere still count:
// only status matters, availability does not reserve anything.
func (s *CraneConfigService) CheckAvailability(ctx context.Context, templateID uint64) (*dto.AvailabilityResultDTO, error) {
	template, err := s.configRepo.FindTemplate(ctx, templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("template not found")
		}
		return nil, err
	}

	items, err := s.configRepo.TemplateItems(ctx, templateID)
	if err != nil {
		return nil, err
	}

	result := dto.AvailabilityResultDTO{
		TemplateID:   template.ID,
		TemplateName: template.ConfigName,
		Items:        make([]dto.AvailabilityItemDTO, 0, len(items)),
		AllAvailable: true,
	}

	for i := range items {
		item := &items[i]

		available, err := s.equipmentRepo.AvailableByType(ctx, item.EquipmentTypeID)
		if err != nil {
			return nil, err
		}

		verdict := dto.AvailabilityItemDTO{
			EquipmentTypeID:   item.EquipmentTypeID,
			QuantityRequired:  item.QuantityRequired,
			QuantityAvailable: len(available),
			IsAvailable:       len(available) >= item.QuantityRequired,
			AvailableItems:    make([]dto.EquipmentItemDTO, 0, len(available)),
		}
		if item.EquipmentTypeName != nil {
			verdict.EquipmentTypeName = *item.EquipmentTypeName
		}
		if !verdict.IsAvailable {
			verdict.MissingQuantity = item.QuantityRequired - len(available)
			result.AllAvailable = false
		}
		for j := range available {
			verdict.AvailableItems = append(verdict.AvailableItems, equipmentItemToDTO(&available[j]))
		}

		result.Items = append(result.Items, verdict)
	}

	return &result, nil
}

func (s *CraneConfigService) GetProjectConfigs(ctx context.Context, projectID uint64) ([]dto.ProjectCraneConfigDTO, error) {
	configs, err := s.configRepo.GetProjectConfigs(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectCraneConfigDTO, 0, len(configs))
	for i := range configs {
		out = append(out, projectConfigToDTO(&configs[i]))
	}
	return out, nil
}

func (s *CraneConfigService) AssignProjectConfig(ctx context.Context, projectID uint64, payload dto.AssignProjectConfigDTO) (*dto.ProjectCraneConfigDTO, error) {
	if _, err := s.projectRepo.FindProject(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, err
	}
	if _, err := s.craneRepo.FindCrane(ctx, payload.CraneID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("crane not found")
		}
		return nil, err
	}
	if _, err := s.configRepo.FindTemplate(ctx, payload.TemplateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("template not found")
		}
		return nil, err
	}

	config := entities.ProjectCraneConfig{
		ProjectID:    projectID,
		CraneID:      payload.CraneID,
		TemplateID:   payload.TemplateID,
		ConfiguredBy: payload.ConfiguredBy,
		Notes:        payload.Notes,
	}

	id, err := s.configRepo.CreateProjectConfig(ctx, &config)
	if err != nil {
		return nil, err
	}

	configs, err := s.configRepo.GetProjectConfigs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		if configs[i].ID == id {
			out := projectConfigToDTO(&configs[i])
			return &out, nil
		}
	}
	out := projectConfigToDTO(&config)
	out.ID = id
	return &out, nil
}
