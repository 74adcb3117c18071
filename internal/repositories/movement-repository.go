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

const movementFields = `m.id, m.resource_type, m.resource_id, m.from_location_id, m.to_location_id,
	m.moved_at, m.moved_by, m.notes, lf.name, lt.name, pe.name`

type MovementRepositoryInterface interface {
	GetMovements(ctx context.Context, filter types.Filter) ([]entities.MovementLog, uint64, error)
	FindMovement(ctx context.Context, id uint64) (*entities.MovementLog, error)
	InsertTx(ctx context.Context, tx pgx.Tx, movement *entities.MovementLog) (uint64, error)
	History(ctx context.Context, resourceType string, resourceID uint64) ([]entities.MovementLog, error)
}

type MovementRepository struct {
	storage *pgxpool.Pool
}

func NewMovementRepository(storage *pgxpool.Pool) MovementRepositoryInterface {
	return &MovementRepository{storage: storage}
}

func scanMovement(row rowScanner) (*entities.MovementLog, error) {
	var m entities.MovementLog
	err := row.Scan(
		&m.ID,
		&m.ResourceType,
		&m.ResourceID,
		&m.FromLocationID,
		&m.ToLocationID,
		&m.MovedAt,
		&m.MovedBy,
		&m.Notes,
		&m.FromLocationName,
		&m.ToLocationName,
		&m.MovedByName,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepository) GetMovements(ctx context.Context, filter types.Filter) ([]entities.MovementLog, uint64, error) {
	builder := sq.Select(movementFields).
		From("movement_logs m").
		LeftJoin("locations lf ON m.from_location_id = lf.id").
		LeftJoin("locations lt ON m.to_location_id = lt.id").
		LeftJoin("persons pe ON m.moved_by = pe.id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("movement_logs m").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "resource_type", "resource_id", "to_location_id":
			builder = builder.Where(sq.Eq{"m." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"m." + field: value})
		case "from":
			builder = builder.Where(sq.GtOrEq{"m.moved_at": value})
			countBuilder = countBuilder.Where(sq.GtOrEq{"m.moved_at": value})
		case "to":
			builder = builder.Where(sq.LtOrEq{"m.moved_at": value})
			countBuilder = countBuilder.Where(sq.LtOrEq{"m.moved_at": value})
		}
	}

	builder = builder.OrderBy("m.moved_at DESC", "m.id DESC")
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

	var movements []entities.MovementLog
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, err
		}
		movements = append(movements, *m)
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

	return movements, total, nil
}

func (r *MovementRepository) FindMovement(ctx context.Context, id uint64) (*entities.MovementLog, error) {
	query := `
		SELECT ` + movementFields + `
		FROM movement_logs m
		LEFT JOIN locations lf ON m.from_location_id = lf.id
		LEFT JOIN locations lt ON m.to_location_id = lt.id
		LEFT JOIN persons pe ON m.moved_by = pe.id
		WHERE m.id = $1
	`

	m, err := scanMovement(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MovementRepository) InsertTx(ctx context.Context, tx pgx.Tx, movement *entities.MovementLog) (uint64, error) {
	query := `
		INSERT INTO movement_logs (resource_type, resource_id, from_location_id, to_location_id, moved_at, moved_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uint64
	err := tx.QueryRow(ctx, query,
		movement.ResourceType,
		movement.ResourceID,
		movement.FromLocationID,
		movement.ToLocationID,
		movement.MovedAt,
		movement.MovedBy,
		movement.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MovementRepository) History(ctx context.Context, resourceType string, resourceID uint64) ([]entities.MovementLog, error) {
	query := `
		SELECT ` + movementFields + `
		FROM movement_logs m
		LEFT JOIN locations lf ON m.from_location_id = lf.id
		LEFT JOIN locations lt ON m.to_location_id = lt.id
		LEFT JOIN persons pe ON m.moved_by = pe.id
		WHERE m.resource_type = $1 AND m.resource_id = $2
		ORDER BY m.moved_at DESC, m.id DESC
	`

	rows, err := r.storage.Query(ctx, query, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []entities.MovementLog
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *m)
	}
	return movements, rows.Err()
}
