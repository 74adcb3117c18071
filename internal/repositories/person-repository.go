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

const personFields = `p.id, p.name, p.phone, p.email, p.role, p.status, p.notes, p.created_at, p.updated_at`

type PersonRepositoryInterface interface {
	GetPersons(ctx context.Context, filter types.Filter) ([]entities.Person, uint64, error)
	FindPerson(ctx context.Context, id uint64) (*entities.Person, error)
	CreatePerson(ctx context.Context, person *entities.Person) (uint64, error)
	UpdatePerson(ctx context.Context, id uint64, person *entities.Person) error
	DeletePerson(ctx context.Context, id uint64) error
}

type PersonRepository struct {
	storage *pgxpool.Pool
}

func NewPersonRepository(storage *pgxpool.Pool) PersonRepositoryInterface {
	return &PersonRepository{storage: storage}
}

func (r *PersonRepository) GetPersons(ctx context.Context, filter types.Filter) ([]entities.Person, uint64, error) {
	builder := sq.Select(personFields).From("persons p").PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").From("persons p").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "role", "status":
			builder = builder.Where(sq.Eq{"p." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"p." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.email": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("p.name")
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

	var persons []entities.Person
	for rows.Next() {
		var person entities.Person
		err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Phone,
			&person.Email,
			&person.Role,
			&person.Status,
			&person.Notes,
			&person.CreatedAt,
			&person.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		persons = append(persons, person)
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

	return persons, total, nil
}

func (r *PersonRepository) FindPerson(ctx context.Context, id uint64) (*entities.Person, error) {
	query := `SELECT ` + personFields + ` FROM persons p WHERE p.id = $1`

	var person entities.Person
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.Phone,
		&person.Email,
		&person.Role,
		&person.Status,
		&person.Notes,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) CreatePerson(ctx context.Context, person *entities.Person) (uint64, error) {
	query := `
		INSERT INTO persons (name, phone, email, role, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		person.Name,
		person.Phone,
		person.Email,
		person.Role,
		person.Status,
		person.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PersonRepository) UpdatePerson(ctx context.Context, id uint64, person *entities.Person) error {
	query := `
		UPDATE persons
		SET name = $1, phone = $2, email = $3, role = $4, status = $5, notes = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`

	result, err := r.storage.Exec(ctx, query,
		person.Name,
		person.Phone,
		person.Email,
		person.Role,
		person.Status,
		person.Notes,
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

func (r *PersonRepository) DeletePerson(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM persons WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
