package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectFields = `p.id, p.name, p.customer_id, p.location_id, p.start_date, p.end_date,
	p.actual_start_date, p.actual_end_date, p.status, p.notes,
	p.project_engineer_id, p.project_site_manager_id, p.created_at, p.updated_at`

type ProjectRepositoryInterface interface {
	GetProjects(ctx context.Context, filter types.Filter) ([]entities.Project, uint64, error)
	FindProject(ctx context.Context, id uint64) (*entities.Project, error)
	CreateProject(ctx context.Context, project *entities.Project) (uint64, error)
	UpdateProject(ctx context.Context, id uint64, project *entities.Project) error
	DeleteProject(ctx context.Context, id uint64) error
}

type ProjectRepository struct {
	storage *pgxpool.Pool
}

func NewProjectRepository(storage *pgxpool.Pool) ProjectRepositoryInterface {
	return &ProjectRepository{storage: storage}
}

func (r *ProjectRepository) GetProjects(ctx context.Context, filter types.Filter) ([]entities.Project, uint64, error) {
	builder := sq.Select(projectFields, "c.id", "c.name", "l.id", "l.name", "l.type").
		From("projects p").
		LeftJoin("customers c ON p.customer_id = c.id").
		LeftJoin("locations l ON p.location_id = l.id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("projects p").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "status", "customer_id", "location_id":
			builder = builder.Where(sq.Eq{"p." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"p." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.ILike{"p.name": pattern})
		countBuilder = countBuilder.Where(sq.ILike{"p.name": pattern})
	}

	builder = builder.OrderBy("p.start_date DESC NULLS LAST", "p.id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []entities.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func scanProject(row rowScanner) (*entities.Project, error) {
	var project entities.Project
	var custID *uint64
	var custName *string
	var locID *uint64
	var locName, locType *string

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.CustomerID,
		&project.LocationID,
		&project.StartDate,
		&project.EndDate,
		&project.ActualStartDate,
		&project.ActualEndDate,
		&project.Status,
		&project.Notes,
		&project.ProjectEngineerID,
		&project.ProjectSiteManagerID,
		&project.CreatedAt,
		&project.UpdatedAt,
		&custID,
		&custName,
		&locID,
		&locName,
		&locType,
	)
	if err != nil {
		return nil, err
	}

	if custID != nil {
		project.Customer = &entities.Customer{ID: *custID, Name: *custName}
	}
	if locID != nil {
		project.Location = &entities.Location{ID: *locID, Name: *locName, Type: *locType}
	}
	return &project, nil
}

func (r *ProjectRepository) FindProject(ctx context.Context, id uint64) (*entities.Project, error) {
	query := `
		SELECT ` + projectFields + `, c.id, c.name, l.id, l.name, l.type
		FROM projects p
		LEFT JOIN customers c ON p.customer_id = c.id
		LEFT JOIN locations l ON p.location_id = l.id
		WHERE p.id = $1
	`

	project, err := scanProject(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *entities.Project) (uint64, error) {
	query := `
		INSERT INTO projects (
			name, customer_id, location_id, start_date, end_date,
			actual_start_date, actual_end_date, status, notes,
			project_engineer_id, project_site_manager_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		project.Name,
		project.CustomerID,
		project.LocationID,
		project.StartDate,
		project.EndDate,
		project.ActualStartDate,
		project.ActualEndDate,
		project.Status,
		project.Notes,
		project.ProjectEngineerID,
		project.ProjectSiteManagerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id uint64, project *entities.Project) error {
	query := `
		UPDATE projects
		SET name = $1, customer_id = $2, location_id = $3, start_date = $4,
			end_date = $5, actual_start_date = $6, actual_end_date = $7,
			status = $8, notes = $9, project_engineer_id = $10,
			project_site_manager_id = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
	`

	result, err := r.storage.Exec(ctx, query,
		project.Name,
		project.CustomerID,
		project.LocationID,
		project.StartDate,
		project.EndDate,
		project.ActualStartDate,
		project.ActualEndDate,
		project.Status,
		project.Notes,
		project.ProjectEngineerID,
		project.ProjectSiteManagerID,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
