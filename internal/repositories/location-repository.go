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

const locationFields = `l.id, l.name, l.type, l.address, l.city, l.notes, l.created_at, l.updated_at`

type LocationRepositoryInterface interface {
	GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, uint64, error)
	FindLocation(ctx context.Context, id uint64) (*entities.Location, error)
	CreateLocation(ctx context.Context, location *entities.Location) (uint64, error)
	UpdateLocation(ctx context.Context, id uint64, location *entities.Location) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationRepository struct {
	storage *pgxpool.Pool
}

func NewLocationRepository(storage *pgxpool.Pool) LocationRepositoryInterface {
	return &LocationRepository{storage: storage}
}

func (r *LocationRepository) GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, uint64, error) {
	builder := sq.Select(locationFields).From("locations l").PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").From("locations l").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "type", "city":
			builder = builder.Where(sq.Eq{"l." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"l." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"l.name": pattern},
			sq.ILike{"l.city": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("l.name")
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

	var locations []entities.Location
	for rows.Next() {
		var location entities.Location
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Type,
			&location.Address,
			&location.City,
			&location.Notes,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		locations = append(locations, location)
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

	return locations, total, nil
}

func (r *LocationRepository) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	query := `SELECT ` + locationFields + ` FROM locations l WHERE l.id = $1`

	var location entities.Location
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.Type,
		&location.Address,
		&location.City,
		&location.Notes,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) CreateLocation(ctx context.Context, location *entities.Location) (uint64, error) {
	query := `
		INSERT INTO locations (name, type, address, city, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		location.Name,
		location.Type,
		location.Address,
		location.City,
		location.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, id uint64, location *entities.Location) error {
	query := `
		UPDATE locations
		SET name = $1, type = $2, address = $3, city = $4, notes = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	result, err := r.storage.Exec(ctx, query,
		location.Name,
		location.Type,
		location.Address,
		location.City,
		location.Notes,
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

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM locations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
