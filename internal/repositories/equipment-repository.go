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

const equipmentItemFields = `ei.id, ei.equipment_type_id, ei.serial_no, ei.status,
	ei.current_location_id, ei.on_truck_id, ei.owner_crane_id, ei.notes,
	ei.created_at, ei.updated_at, et.name, et.category, et.unit, l.name, t.plate_no`

type EquipmentRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context, filter types.Filter) ([]entities.EquipmentType, uint64, error)
	FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error)
	CreateEquipmentType(ctx context.Context, et *entities.EquipmentType) (uint64, error)

	GetEquipmentItems(ctx context.Context, filter types.Filter) ([]entities.EquipmentItem, uint64, error)
	FindEquipmentItem(ctx context.Context, id uint64) (*entities.EquipmentItem, error)
	CreateEquipmentItem(ctx context.Context, item *entities.EquipmentItem) (uint64, error)
	SetItemPlace(ctx context.Context, id uint64, locationID, truckID *uint64) error
	UpdateItemLocationTx(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error
	ItemsOnTruck(ctx context.Context, truckID uint64) ([]entities.EquipmentItem, error)
	ItemsByOwnerCrane(ctx context.Context, craneID uint64) ([]entities.EquipmentItem, error)
	AvailableByType(ctx context.Context, equipmentTypeID uint64) ([]entities.EquipmentItem, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipmentTypes(ctx context.Context, filter types.Filter) ([]entities.EquipmentType, uint64, error) {
	builder := sq.Select("et.id, et.name, et.category, et.unit, et.created_at, et.updated_at").
		From("equipment_types et").
		PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").From("equipment_types et").PlaceholderFormat(sq.Dollar)

	if category, ok := filter.Filter["category"]; ok {
		builder = builder.Where(sq.Eq{"et.category": category})
		countBuilder = countBuilder.Where(sq.Eq{"et.category": category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.ILike{"et.name": pattern})
		countBuilder = countBuilder.Where(sq.ILike{"et.name": pattern})
	}

	builder = builder.OrderBy("et.category", "et.name")
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

	var equipmentTypes []entities.EquipmentType
	for rows.Next() {
		var et entities.EquipmentType
		err := rows.Scan(&et.ID, &et.Name, &et.Category, &et.Unit, &et.CreatedAt, &et.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		equipmentTypes = append(equipmentTypes, et)
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

	return equipmentTypes, total, nil
}

func (r *EquipmentRepository) FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error) {
	var et entities.EquipmentType
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, category, unit, created_at, updated_at FROM equipment_types WHERE id = $1", id,
	).Scan(&et.ID, &et.Name, &et.Category, &et.Unit, &et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &et, nil
}

func (r *EquipmentRepository) CreateEquipmentType(ctx context.Context, et *entities.EquipmentType) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		"INSERT INTO equipment_types (name, category, unit) VALUES ($1, $2, $3) RETURNING id",
		et.Name, et.Category, et.Unit,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func scanEquipmentItem(row rowScanner) (*entities.EquipmentItem, error) {
	var item entities.EquipmentItem
	var typeName, typeCategory *string
	var typeUnit *string
	var locName, truckPlate *string

	err := row.Scan(
		&item.ID,
		&item.EquipmentTypeID,
		&item.SerialNo,
		&item.Status,
		&item.CurrentLocationID,
		&item.OnTruckID,
		&item.OwnerCraneID,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
		&typeName,
		&typeCategory,
		&typeUnit,
		&locName,
		&truckPlate,
	)
	if err != nil {
		return nil, err
	}

	if typeName != nil {
		item.EquipmentType = &entities.EquipmentType{
			ID:       item.EquipmentTypeID,
			Name:     *typeName,
			Category: *typeCategory,
			Unit:     typeUnit,
		}
	}
	if item.CurrentLocationID != nil && locName != nil {
		item.Location = &entities.Location{ID: *item.CurrentLocationID, Name: *locName}
	}
	if item.OnTruckID != nil && truckPlate != nil {
		item.Truck = &entities.Truck{ID: *item.OnTruckID, PlateNo: *truckPlate}
	}
	return &item, nil
}

func (r *EquipmentRepository) queryItems(ctx context.Context, query string, args ...any) ([]entities.EquipmentItem, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.EquipmentItem
	for rows.Next() {
		item, err := scanEquipmentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) GetEquipmentItems(ctx context.Context, filter types.Filter) ([]entities.EquipmentItem, uint64, error) {
	builder := sq.Select(equipmentItemFields).
		From("equipment_items ei").
		Join("equipment_types et ON ei.equipment_type_id = et.id").
		LeftJoin("locations l ON ei.current_location_id = l.id").
		LeftJoin("trucks t ON ei.on_truck_id = t.id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("equipment_items ei").PlaceholderFormat(sq.Dollar)

	for field, value := range filter.Filter {
		switch field {
		case "status", "equipment_type_id", "owner_crane_id", "current_location_id", "on_truck_id":
			builder = builder.Where(sq.Eq{"ei." + field: value})
			countBuilder = countBuilder.Where(sq.Eq{"ei." + field: value})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.ILike{"ei.serial_no": pattern})
		countBuilder = countBuilder.Where(sq.ILike{"ei.serial_no": pattern})
	}

	builder = builder.OrderBy("et.name", "ei.serial_no NULLS LAST", "ei.id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
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

	return items, total, nil
}

func (r *EquipmentRepository) FindEquipmentItem(ctx context.Context, id uint64) (*entities.EquipmentItem, error) {
	query := `
		SELECT ` + equipmentItemFields + `
		FROM equipment_items ei
		JOIN equipment_types et ON ei.equipment_type_id = et.id
		LEFT JOIN locations l ON ei.current_location_id = l.id
		LEFT JOIN trucks t ON ei.on_truck_id = t.id
		WHERE ei.id = $1
	`

	item, err := scanEquipmentItem(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *EquipmentRepository) CreateEquipmentItem(ctx context.Context, item *entities.EquipmentItem) (uint64, error) {
	query := `
		INSERT INTO equipment_items (equipment_type_id, serial_no, status, current_location_id, on_truck_id, owner_crane_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		item.EquipmentTypeID,
		item.SerialNo,
		item.Status,
		item.CurrentLocationID,
		item.OnTruckID,
		item.OwnerCraneID,
		item.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetItemPlace moves the item to a location, onto a truck, or clears both.
// Callers guarantee at most one of the two is non-nil.
func (r *EquipmentRepository) SetItemPlace(ctx context.Context, id uint64, locationID, truckID *uint64) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE equipment_items
		SET current_location_id = $1, on_truck_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, locationID, truckID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateItemLocationTx relocates the item and takes it off any truck, keeping
// the location/truck exclusivity intact inside a movement transaction.
func (r *EquipmentRepository) UpdateItemLocationTx(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	result, err := tx.Exec(ctx, `
		UPDATE equipment_items
		SET current_location_id = $1, on_truck_id = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, locationID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) ItemsOnTruck(ctx context.Context, truckID uint64) ([]entities.EquipmentItem, error) {
	query := `
		SELECT ` + equipmentItemFields + `
		FROM equipment_items ei
		JOIN equipment_types et ON ei.equipment_type_id = et.id
		LEFT JOIN locations l ON ei.current_location_id = l.id
		LEFT JOIN trucks t ON ei.on_truck_id = t.id
		WHERE ei.on_truck_id = $1
		ORDER BY et.name, ei.serial_no NULLS LAST
	`
	return r.queryItems(ctx, query, truckID)
}

func (r *EquipmentRepository) ItemsByOwnerCrane(ctx context.Context, craneID uint64) ([]entities.EquipmentItem, error) {
	query := `
		SELECT ` + equipmentItemFields + `
		FROM equipment_items ei
		JOIN equipment_types et ON ei.equipment_type_id = et.id
		LEFT JOIN locations l ON ei.current_location_id = l.id
		LEFT JOIN trucks t ON ei.on_truck_id = t.id
		WHERE ei.owner_crane_id = $1
		ORDER BY et.category, et.name, ei.serial_no NULLS LAST
	`
	return r.queryItems(ctx, query, craneID)
}

// AvailableByType lists AVAILABLE items of one type ordered by serial number,
// the order the availability report presents candidates in.
func (r *EquipmentRepository) AvailableByType(ctx context.Context, equipmentTypeID uint64) ([]entities.EquipmentItem, error) {
	query := `
		SELECT ` + equipmentItemFields + `
		FROM equipment_items ei
		JOIN equipment_types et ON ei.equipment_type_id = et.id
		LEFT JOIN locations l ON ei.current_location_id = l.id
		LEFT JOIN trucks t ON ei.on_truck_id = t.id
		WHERE ei.equipment_type_id = $1 AND ei.status = 'AVAILABLE'
		ORDER BY ei.serial_no NULLS LAST, ei.id
	`
	return r.queryItems(ctx, query, equipmentTypeID)
}
