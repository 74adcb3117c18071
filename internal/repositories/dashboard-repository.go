package repositories

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	Stats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	RecentMovements(ctx context.Context, limit int) ([]entities.MovementLog, error)
	ActiveProjects(ctx context.Context, limit int) ([]entities.Project, error)
	MovementsByDay(ctx context.Context, days int) ([]dto.DateCountDTO, error)
	ProjectsByStatus(ctx context.Context) ([]dto.StatusCountDTO, error)
	CranesByStatus(ctx context.Context) ([]dto.StatusCountDTO, error)
	ProjectsByMonth(ctx context.Context, months int) ([]dto.MonthCountDTO, error)
	TopEquipmentTypes(ctx context.Context, limit int) ([]dto.EquipmentUsageDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM cranes),
			(SELECT COUNT(*) FROM cranes WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM cranes WHERE status = 'MAINTENANCE'),
			(SELECT COUNT(*) FROM trucks),
			(SELECT COUNT(*) FROM trucks WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM movement_logs WHERE moved_at >= CURRENT_DATE)
	`

	var stats dto.DashboardStatsDTO
	err := r.storage.QueryRow(ctx, query).Scan(
		&stats.ActiveProjects,
		&stats.TotalCranes,
		&stats.ActiveCranes,
		&stats.MaintenanceCranes,
		&stats.TotalTrucks,
		&stats.ActiveTrucks,
		&stats.TodayMovements,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *DashboardRepository) RecentMovements(ctx context.Context, limit int) ([]entities.MovementLog, error) {
	query := `
		SELECT ` + movementFields + `
		FROM movement_logs m
		LEFT JOIN locations lf ON m.from_location_id = lf.id
		LEFT JOIN locations lt ON m.to_location_id = lt.id
		LEFT JOIN persons pe ON m.moved_by = pe.id
		ORDER BY m.moved_at DESC, m.id DESC
		LIMIT $1
	`

	rows, err := r.storage.Query(ctx, query, limit)
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

func (r *DashboardRepository) ActiveProjects(ctx context.Context, limit int) ([]entities.Project, error) {
	query := `
		SELECT ` + projectFields + `, c.id, c.name, l.id, l.name, l.type
		FROM projects p
		LEFT JOIN customers c ON p.customer_id = c.id
		LEFT JOIN locations l ON p.location_id = l.id
		WHERE p.status = 'ACTIVE'
		ORDER BY p.start_date DESC NULLS LAST
		LIMIT $1
	`

	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []entities.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *DashboardRepository) MovementsByDay(ctx context.Context, days int) ([]dto.DateCountDTO, error) {
	query := `
		SELECT to_char(moved_at::date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM movement_logs
		WHERE moved_at >= CURRENT_DATE - ($1 || ' days')::interval
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.storage.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.DateCountDTO
	for rows.Next() {
		var c dto.DateCountDTO
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *DashboardRepository) ProjectsByStatus(ctx context.Context) ([]dto.StatusCountDTO, error) {
	return r.statusCounts(ctx, "SELECT status, COUNT(*) FROM projects GROUP BY status ORDER BY status")
}

func (r *DashboardRepository) CranesByStatus(ctx context.Context) ([]dto.StatusCountDTO, error) {
	return r.statusCounts(ctx, "SELECT status, COUNT(*) FROM cranes GROUP BY status ORDER BY status")
}

func (r *DashboardRepository) statusCounts(ctx context.Context, query string) ([]dto.StatusCountDTO, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.StatusCountDTO
	for rows.Next() {
		var c dto.StatusCountDTO
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *DashboardRepository) ProjectsByMonth(ctx context.Context, months int) ([]dto.MonthCountDTO, error) {
	query := `
		SELECT to_char(date_trunc('month', start_date), 'YYYY-MM') AS month, COUNT(*)
		FROM projects
		WHERE start_date IS NOT NULL
			AND start_date >= date_trunc('month', CURRENT_DATE) - ($1 || ' months')::interval
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.storage.Query(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.MonthCountDTO
	for rows.Next() {
		var c dto.MonthCountDTO
		if err := rows.Scan(&c.Month, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *DashboardRepository) TopEquipmentTypes(ctx context.Context, limit int) ([]dto.EquipmentUsageDTO, error) {
	query := `
		SELECT et.name, COUNT(*) AS usage_count
		FROM equipment_items ei
		JOIN equipment_types et ON ei.equipment_type_id = et.id
		WHERE ei.status = 'IN_USE'
		GROUP BY et.name
		ORDER BY usage_count DESC, et.name
		LIMIT $1
	`

	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []dto.EquipmentUsageDTO
	for rows.Next() {
		var u dto.EquipmentUsageDTO
		if err := rows.Scan(&u.Name, &u.UsageCount); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
