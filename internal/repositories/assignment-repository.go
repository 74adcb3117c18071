package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// resourceNameCase resolves the display name of an assignment's resource
// across the four resource tables.
const resourceNameCase = `
	CASE a.resource_type
		WHEN 'CRANE' THEN (SELECT c.name FROM cranes c WHERE c.id = a.resource_id)
		WHEN 'TRUCK' THEN (SELECT t.plate_no FROM trucks t WHERE t.id = a.resource_id)
		WHEN 'EQUIPMENT' THEN (SELECT et.name FROM equipment_items ei JOIN equipment_types et ON ei.equipment_type_id = et.id WHERE ei.id = a.resource_id)
		WHEN 'PERSON' THEN (SELECT pe.name FROM persons pe WHERE pe.id = a.resource_id)
	END`

type AssignmentRepositoryInterface interface {
	ActiveByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error)
	HistoryByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error)
	ActiveByResource(ctx context.Context, resourceType string, resourceID uint64) ([]entities.ProjectAssignment, error)
	LockResource(ctx context.Context, tx pgx.Tx, resourceType string, resourceID uint64) error
	FindOpenConflict(ctx context.Context, tx pgx.Tx, resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error)
	InsertTx(ctx context.Context, tx pgx.Tx, assignment *entities.ProjectAssignment) (uint64, error)
	CloseAssignment(ctx context.Context, projectID, id uint64, unassignedAt time.Time, reason *string) error
	AmendReason(ctx context.Context, projectID, id uint64, reason string) error
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

func scanAssignment(row rowScanner) (*entities.ProjectAssignment, error) {
	var a entities.ProjectAssignment
	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.ResourceType,
		&a.ResourceID,
		&a.AssignedAt,
		&a.UnassignedAt,
		&a.UnassignmentReason,
		&a.Notes,
		&a.ResourceName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, query string, args ...any) ([]entities.ProjectAssignment, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []entities.ProjectAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) ActiveByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error) {
	query := `
		SELECT a.id, a.project_id, a.resource_type, a.resource_id, a.assigned_at,
			a.unassigned_at, a.unassignment_reason, a.notes, ` + resourceNameCase + `
		FROM project_assignments a
		WHERE a.project_id = $1 AND a.unassigned_at IS NULL
		ORDER BY a.assigned_at DESC
	`
	return r.queryAssignments(ctx, query, projectID)
}

func (r *AssignmentRepository) HistoryByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error) {
	query := `
		SELECT a.id, a.project_id, a.resource_type, a.resource_id, a.assigned_at,
			a.unassigned_at, a.unassignment_reason, a.notes, ` + resourceNameCase + `
		FROM project_assignments a
		WHERE a.project_id = $1
		ORDER BY COALESCE(a.unassigned_at, a.assigned_at) DESC
	`
	return r.queryAssignments(ctx, query, projectID)
}

func (r *AssignmentRepository) ActiveByResource(ctx context.Context, resourceType string, resourceID uint64) ([]entities.ProjectAssignment, error) {
	query := `
		SELECT a.id, a.project_id, a.resource_type, a.resource_id, a.assigned_at,
			a.unassigned_at, a.unassignment_reason, a.notes, ` + resourceNameCase + `
		FROM project_assignments a
		WHERE a.resource_type = $1 AND a.resource_id = $2 AND a.unassigned_at IS NULL
		ORDER BY a.assigned_at DESC
	`
	return r.queryAssignments(ctx, query, resourceType, resourceID)
}

// LockResource serializes concurrent assignment attempts for one resource.
// The advisory lock is transaction-scoped and releases on commit or rollback.
func (r *AssignmentRepository) LockResource(ctx context.Context, tx pgx.Tx, resourceType string, resourceID uint64) error {
	_, err := tx.Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1))",
		resourceType+":"+strconv.FormatUint(resourceID, 10),
	)
	return err
}

// FindOpenConflict reports an open assignment of the resource on another
// ACTIVE project. Returns ErrNotFound when the resource is free.
func (r *AssignmentRepository) FindOpenConflict(ctx context.Context, tx pgx.Tx, resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error) {
	query := `
		SELECT a.id, a.project_id, a.resource_type, a.resource_id, a.assigned_at,
			a.unassigned_at, a.unassignment_reason, a.notes, p.name
		FROM project_assignments a
		JOIN projects p ON a.project_id = p.id
		WHERE a.resource_type = $1 AND a.resource_id = $2
			AND a.unassigned_at IS NULL
			AND a.project_id <> $3
			AND p.status = 'ACTIVE'
		LIMIT 1
	`

	var a entities.ProjectAssignment
	err := tx.QueryRow(ctx, query, resourceType, resourceID, excludeProjectID).Scan(
		&a.ID,
		&a.ProjectID,
		&a.ResourceType,
		&a.ResourceID,
		&a.AssignedAt,
		&a.UnassignedAt,
		&a.UnassignmentReason,
		&a.Notes,
		&a.ProjectName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) InsertTx(ctx context.Context, tx pgx.Tx, assignment *entities.ProjectAssignment) (uint64, error) {
	query := `
		INSERT INTO project_assignments (project_id, resource_type, resource_id, assigned_at, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uint64
	err := tx.QueryRow(ctx, query,
		assignment.ProjectID,
		assignment.ResourceType,
		assignment.ResourceID,
		assignment.AssignedAt,
		assignment.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CloseAssignment ends an open assignment of the given project. A row that
// exists under the project but is already closed yields ErrConflict; a
// missing row, or one belonging to another project, yields ErrNotFound.
func (r *AssignmentRepository) CloseAssignment(ctx context.Context, projectID, id uint64, unassignedAt time.Time, reason *string) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE project_assignments
		SET unassigned_at = $1, unassignment_reason = $2
		WHERE id = $3 AND project_id = $4 AND unassigned_at IS NULL
	`, unassignedAt, reason, id, projectID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.storage.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM project_assignments WHERE id = $1 AND project_id = $2)",
			id, projectID,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return apperrors.ErrConflict
		}
		return apperrors.ErrNotFound
	}
	return nil
}

// AmendReason rewrites the unassignment reason of an already closed row
// under the given project.
func (r *AssignmentRepository) AmendReason(ctx context.Context, projectID, id uint64, reason string) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE project_assignments
		SET unassignment_reason = $1
		WHERE id = $2 AND project_id = $3 AND unassigned_at IS NOT NULL
	`, reason, id, projectID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
