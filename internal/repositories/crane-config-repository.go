package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CraneConfigRepositoryInterface interface {
	GetTemplates(ctx context.Context, craneModel string) ([]entities.CraneConfigTemplate, error)
	FindTemplate(ctx context.Context, id uint64) (*entities.CraneConfigTemplate, error)
	TemplateItems(ctx context.Context, templateID uint64) ([]entities.CraneConfigTemplateItem, error)
	CreateTemplateTx(ctx context.Context, tx pgx.Tx, template *entities.CraneConfigTemplate) (uint64, error)
	CreateTemplateItemTx(ctx context.Context, tx pgx.Tx, item *entities.CraneConfigTemplateItem) (uint64, error)
	DeleteTemplate(ctx context.Context, id uint64) error
	SetTemplateDiagram(ctx context.Context, id uint64, filePath string) error

	GetProjectConfigs(ctx context.Context, projectID uint64) ([]entities.ProjectCraneConfig, error)
	CreateProjectConfig(ctx context.Context, config *entities.ProjectCraneConfig) (uint64, error)
}

type CraneConfigRepository struct {
	storage *pgxpool.Pool
}

func NewCraneConfigRepository(storage *pgxpool.Pool) CraneConfigRepositoryInterface {
	return &CraneConfigRepository{storage: storage}
}

func (r *CraneConfigRepository) GetTemplates(ctx context.Context, craneModel string) ([]entities.CraneConfigTemplate, error) {
	query := `
		SELECT id, crane_model, config_name, description, diagram_file_path, created_at
		FROM crane_config_templates
	`
	args := []any{}
	if craneModel != "" {
		query += " WHERE crane_model = $1"
		args = append(args, craneModel)
	}
	query += " ORDER BY crane_model, config_name"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []entities.CraneConfigTemplate
	for rows.Next() {
		var t entities.CraneConfigTemplate
		err := rows.Scan(&t.ID, &t.CraneModel, &t.ConfigName, &t.Description, &t.DiagramFilePath, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *CraneConfigRepository) FindTemplate(ctx context.Context, id uint64) (*entities.CraneConfigTemplate, error) {
	var t entities.CraneConfigTemplate
	err := r.storage.QueryRow(ctx, `
		SELECT id, crane_model, config_name, description, diagram_file_path, created_at
		FROM crane_config_templates
		WHERE id = $1
	`, id).Scan(&t.ID, &t.CraneModel, &t.ConfigName, &t.Description, &t.DiagramFilePath, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *CraneConfigRepository) TemplateItems(ctx context.Context, templateID uint64) ([]entities.CraneConfigTemplateItem, error) {
	query := `
		SELECT i.id, i.template_id, i.equipment_type_id, i.quantity_required, i.order_index,
			et.name, et.category
		FROM crane_config_template_items i
		JOIN equipment_types et ON i.equipment_type_id = et.id
		WHERE i.template_id = $1
		ORDER BY i.order_index, i.id
	`

	rows, err := r.storage.Query(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.CraneConfigTemplateItem
	for rows.Next() {
		var item entities.CraneConfigTemplateItem
		err := rows.Scan(
			&item.ID,
			&item.TemplateID,
			&item.EquipmentTypeID,
			&item.QuantityRequired,
			&item.OrderIndex,
			&item.EquipmentTypeName,
			&item.Category,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CraneConfigRepository) CreateTemplateTx(ctx context.Context, tx pgx.Tx, template *entities.CraneConfigTemplate) (uint64, error) {
	query := `
		INSERT INTO crane_config_templates (crane_model, config_name, description, diagram_file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uint64
	err := tx.QueryRow(ctx, query,
		template.CraneModel,
		template.ConfigName,
		template.Description,
		template.DiagramFilePath,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r *CraneConfigRepository) CreateTemplateItemTx(ctx context.Context, tx pgx.Tx, item *entities.CraneConfigTemplateItem) (uint64, error) {
	query := `
		INSERT INTO crane_config_template_items (template_id, equipment_type_id, quantity_required, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uint64
	err := tx.QueryRow(ctx, query,
		item.TemplateID,
		item.EquipmentTypeID,
		item.QuantityRequired,
		item.OrderIndex,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CraneConfigRepository) DeleteTemplate(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM crane_config_templates WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CraneConfigRepository) SetTemplateDiagram(ctx context.Context, id uint64, filePath string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE crane_config_templates SET diagram_file_path = $1 WHERE id = $2",
		filePath, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CraneConfigRepository) GetProjectConfigs(ctx context.Context, projectID uint64) ([]entities.ProjectCraneConfig, error) {
	query := `
		SELECT pc.id, pc.project_id, pc.crane_id, pc.template_id, pc.configured_by,
			pc.configured_at, pc.notes, c.name, t.config_name, pe.name
		FROM project_crane_configs pc
		JOIN cranes c ON pc.crane_id = c.id
		JOIN crane_config_templates t ON pc.template_id = t.id
		LEFT JOIN persons pe ON pc.configured_by = pe.id
		WHERE pc.project_id = $1
		ORDER BY pc.configured_at DESC
	`

	rows, err := r.storage.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []entities.ProjectCraneConfig
	for rows.Next() {
		var pc entities.ProjectCraneConfig
		err := rows.Scan(
			&pc.ID,
			&pc.ProjectID,
			&pc.CraneID,
			&pc.TemplateID,
			&pc.ConfiguredBy,
			&pc.ConfiguredAt,
			&pc.Notes,
			&pc.CraneName,
			&pc.TemplateName,
			&pc.ConfiguredByName,
		)
		if err != nil {
			return nil, err
		}
		configs = append(configs, pc)
	}
	return configs, rows.Err()
}

func (r *CraneConfigRepository) CreateProjectConfig(ctx context.Context, config *entities.ProjectCraneConfig) (uint64, error) {
	query := `
		INSERT INTO project_crane_configs (project_id, crane_id, template_id, configured_by, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		config.ProjectID,
		config.CraneID,
		config.TemplateID,
		config.ConfiguredBy,
		config.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
