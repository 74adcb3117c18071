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

const craneFields = `c.id, c.name, c.model, c.type, c.serial_no, c.status, c.current_location_id,
	c.notes, c.plate_no, c.tonnage, c.machine_category, c.brand_model, c.model_year,
	c.km_reading, c.engine_hours, c.current_location_text, c.created_at, c.updated_at`

type CraneRepositoryInterface interface {
	GetCranes(ctx context.Context, filter types.Filter) ([]entities.Crane, uint64, error)
	FindCrane(ctx context.Context, id uint64) (*entities.Crane, error)
	CreateCrane(ctx context.Context, crane *entities.Crane) (uint64, error)
	UpdateCrane(ctx context.Context, id uint64, crane *entities.Crane) error
	DeleteCrane(ctx context.Context, id uint64) error
	UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error
	UpsertByPlate(ctx context.Context, crane *entities.Crane) error
}

type CraneRepository struct {
	storage *pgxpool.Pool
}

func NewCraneRepository(storage *pgxpool.Pool) CraneRepositoryInterface {
	return &CraneRepository{storage: storage}
}

func (r *CraneRepository) GetCranes(ctx context.Context, filter types.Filter) ([]entities.Crane, uint64, error) {
	builder := sq.Select(craneFields, "l.id", "l.name", "l.type").
		From("cranes c").
		LeftJoin("locations l ON c.current_location_id = l.id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("cranes c").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "model", "status", "type", "current_location_id":
			builder = builder.Where(sq.Eq{"c." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"c." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"c.name": pattern},
			sq.ILike{"c.model": pattern},
			sq.ILike{"c.serial_no": pattern},
			sq.ILike{"c.plate_no": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("c.name")
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

	var cranes []entities.Crane
	for rows.Next() {
		crane, err := scanCrane(rows)
		if err != nil {
			return nil, 0, err
		}
		cranes = append(cranes, *crane)
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

	return cranes, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCrane(row rowScanner) (*entities.Crane, error) {
	var crane entities.Crane
	var locID *uint64
	var locName, locType *string

	err := row.Scan(
		&crane.ID,
		&crane.Name,
		&crane.Model,
		&crane.Type,
		&crane.SerialNo,
		&crane.Status,
		&crane.CurrentLocationID,
		&crane.Notes,
		&crane.PlateNo,
		&crane.Tonnage,
		&crane.MachineCategory,
		&crane.BrandModel,
		&crane.ModelYear,
		&crane.KmReading,
		&crane.EngineHours,
		&crane.CurrentLocationText,
		&crane.CreatedAt,
		&crane.UpdatedAt,
		&locID,
		&locName,
		&locType,
	)
	if err != nil {
		return nil, err
	}

	if locID != nil {
		crane.Location = &entities.Location{ID: *locID, Name: *locName, Type: *locType}
	}
	return &crane, nil
}

func (r *CraneRepository) FindCrane(ctx context.Context, id uint64) (*entities.Crane, error) {
	query := `
		SELECT ` + craneFields + `, l.id, l.name, l.type
		FROM cranes c
		LEFT JOIN locations l ON c.current_location_id = l.id
		WHERE c.id = $1
	`

	crane, err := scanCrane(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return crane, nil
}

func (r *CraneRepository) CreateCrane(ctx context.Context, crane *entities.Crane) (uint64, error) {
	query := `
		INSERT INTO cranes (
			name, model, type, serial_no, status, current_location_id, notes,
			plate_no, tonnage, machine_category, brand_model, model_year,
			km_reading, engine_hours, current_location_text
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		crane.Name,
		crane.Model,
		crane.Type,
		crane.SerialNo,
		crane.Status,
		crane.CurrentLocationID,
		crane.Notes,
		crane.PlateNo,
		crane.Tonnage,
		crane.MachineCategory,
		crane.BrandModel,
		crane.ModelYear,
		crane.KmReading,
		crane.EngineHours,
		crane.CurrentLocationText,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r *CraneRepository) UpdateCrane(ctx context.Context, id uint64, crane *entities.Crane) error {
	query := `
		UPDATE cranes
		SET name = $1, model = $2, type = $3, serial_no = $4, status = $5,
			current_location_id = $6, notes = $7, plate_no = $8, tonnage = $9,
			machine_category = $10, brand_model = $11, model_year = $12,
			km_reading = $13, engine_hours = $14, current_location_text = $15,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $16
	`

	result, err := r.storage.Exec(ctx, query,
		crane.Name,
		crane.Model,
		crane.Type,
		crane.SerialNo,
		crane.Status,
		crane.CurrentLocationID,
		crane.Notes,
		crane.PlateNo,
		crane.Tonnage,
		crane.MachineCategory,
		crane.BrandModel,
		crane.ModelYear,
		crane.KmReading,
		crane.EngineHours,
		crane.CurrentLocationText,
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

func (r *CraneRepository) DeleteCrane(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM cranes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CraneRepository) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	result, err := tx.Exec(ctx,
		"UPDATE cranes SET current_location_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
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

// UpsertByPlate inserts or refreshes an imported fleet-list row, keyed by
// plate number.
func (r *CraneRepository) UpsertByPlate(ctx context.Context, crane *entities.Crane) error {
	query := `
		INSERT INTO cranes (
			name, model, type, serial_no, status,
			plate_no, tonnage, machine_category, brand_model, model_year,
			km_reading, engine_hours, current_location_text, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (plate_no) DO UPDATE SET
			model = EXCLUDED.model,
			type = EXCLUDED.type,
			serial_no = EXCLUDED.serial_no,
			status = EXCLUDED.status,
			tonnage = EXCLUDED.tonnage,
			machine_category = EXCLUDED.machine_category,
			brand_model = EXCLUDED.brand_model,
			model_year = EXCLUDED.model_year,
			km_reading = EXCLUDED.km_reading,
			engine_hours = EXCLUDED.engine_hours,
			current_location_text = EXCLUDED.current_location_text,
			notes = EXCLUDED.notes,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.storage.Exec(ctx, query,
		crane.Name,
		crane.Model,
		crane.Type,
		crane.SerialNo,
		crane.Status,
		crane.PlateNo,
		crane.Tonnage,
		crane.MachineCategory,
		crane.BrandModel,
		crane.ModelYear,
		crane.KmReading,
		crane.EngineHours,
		crane.CurrentLocationText,
		crane.Notes,
	)
	return err
}
