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

const truckFields = `t.id, t.plate_no, t.type, t.model, t.status, t.current_location_id,
	t.notes, t.created_at, t.updated_at`

type TruckRepositoryInterface interface {
	GetTrucks(ctx context.Context, filter types.Filter) ([]entities.Truck, uint64, error)
	FindTruck(ctx context.Context, id uint64) (*entities.Truck, error)
	CreateTruck(ctx context.Context, truck *entities.Truck) (uint64, error)
	UpdateTruck(ctx context.Context, id uint64, truck *entities.Truck) error
	DeleteTruck(ctx context.Context, id uint64) error
	UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error
}

type TruckRepository struct {
	storage *pgxpool.Pool
}

func NewTruckRepository(storage *pgxpool.Pool) TruckRepositoryInterface {
	return &TruckRepository{storage: storage}
}

func (r *TruckRepository) GetTrucks(ctx context.Context, filter types.Filter) ([]entities.Truck, uint64, error) {
	builder := sq.Select(truckFields, "l.id", "l.name", "l.type").
		From("trucks t").
		LeftJoin("locations l ON t.current_location_id = l.id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("trucks t").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "status", "type", "current_location_id":
			builder = builder.Where(sq.Eq{"t." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"t." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"t.plate_no": pattern},
			sq.ILike{"t.model": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("t.plate_no")
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

	var trucks []entities.Truck
	for rows.Next() {
		truck, err := scanTruck(rows)
		if err != nil {
			return nil, 0, err
		}
		trucks = append(trucks, *truck)
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

	return trucks, total, nil
}

func scanTruck(row rowScanner) (*entities.Truck, error) {
	var truck entities.Truck
	var locID *uint64
	var locName, locType *string

	err := row.Scan(
		&truck.ID,
		&truck.PlateNo,
		&truck.Type,
		&truck.Model,
		&truck.Status,
		&truck.CurrentLocationID,
		&truck.Notes,
		&truck.CreatedAt,
		&truck.UpdatedAt,
		&locID,
		&locName,
		&locType,
	)
	if err != nil {
		return nil, err
	}

	if locID != nil {
		truck.Location = &entities.Location{ID: *locID, Name: *locName, Type: *locType}
	}
	return &truck, nil
}

func (r *TruckRepository) FindTruck(ctx context.Context, id uint64) (*entities.Truck, error) {
	query := `
		SELECT ` + truckFields + `, l.id, l.name, l.type
		FROM trucks t
		LEFT JOIN locations l ON t.current_location_id = l.id
		WHERE t.id = $1
	`

	truck, err := scanTruck(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return truck, nil
}

func (r *TruckRepository) CreateTruck(ctx context.Context, truck *entities.Truck) (uint64, error) {
	query := `
		INSERT INTO trucks (plate_no, type, model, status, current_location_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		truck.PlateNo,
		truck.Type,
		truck.Model,
		truck.Status,
		truck.CurrentLocationID,
		truck.Notes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r *TruckRepository) UpdateTruck(ctx context.Context, id uint64, truck *entities.Truck) error {
	query := `
		UPDATE trucks
		SET plate_no = $1, type = $2, model = $3, status = $4,
			current_location_id = $5, notes = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`

	result, err := r.storage.Exec(ctx, query,
		truck.PlateNo,
		truck.Type,
		truck.Model,
		truck.Status,
		truck.CurrentLocationID,
		truck.Notes,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TruckRepository) DeleteTruck(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM trucks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TruckRepository) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	result, err := tx.Exec(ctx,
		"UPDATE trucks SET current_location_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		locationID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
