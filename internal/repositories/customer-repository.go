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

const customerFields = `c.id, c.name, c.city, c.notes, c.created_at, c.updated_at`

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, customer *entities.Customer) (uint64, error)
	UpdateCustomer(ctx context.Context, id uint64, customer *entities.Customer) error
	DeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerRepository struct {
	storage *pgxpool.Pool
}

func NewCustomerRepository(storage *pgxpool.Pool) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage}
}

func (r *CustomerRepository) GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	builder := sq.Select(customerFields).From("customers c").PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").From("customers c").PlaceholderFormat(sq.Dollar)

	if city, ok := filter.Filter["city"]; ok {
		builder = builder.Where(sq.Eq{"c.city": city})
		countBuilder = countBuilder.Where(sq.Eq{"c.city": city})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.ILike{"c.name": pattern})
		countBuilder = countBuilder.Where(sq.ILike{"c.name": pattern})
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

	var customers []entities.Customer
	for rows.Next() {
		var customer entities.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.City,
			&customer.Notes,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, customer)
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

	return customers, total, nil
}

func (r *CustomerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	query := `SELECT ` + customerFields + ` FROM customers c WHERE c.id = $1`

	var customer entities.Customer
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.City,
		&customer.Notes,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *entities.Customer) (uint64, error) {
	query := `
		INSERT INTO customers (name, city, notes)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query, customer.Name, customer.City, customer.Notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, id uint64, customer *entities.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, city = $2, notes = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	result, err := r.storage.Exec(ctx, query, customer.Name, customer.City, customer.Notes, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
