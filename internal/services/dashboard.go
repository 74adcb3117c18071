package services

import (
	"context"
	"encoding/json"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"

	"go.uber.org/zap"
)

const dashboardOverviewCacheKey = "dashboard:overview"

type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error)
	Charts(ctx context.Context) (*dto.DashboardChartsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Overview aggregates the landing-page numbers. The result is cached briefly
// since every client loads it on open; cache failures only cost the cache.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardOverviewCacheKey); err == nil && cached != "" {
		var overview dto.DashboardOverviewDTO
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return &overview, nil
		}
	}

	stats, err := s.dashboardRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboardRepo.RecentMovements(ctx, 10)
	if err != nil {
		return nil, err
	}

	active, err := s.dashboardRepo.ActiveProjects(ctx, 10)
	if err != nil {
		return nil, err
	}

	overview := dto.DashboardOverviewDTO{
		Stats:           *stats,
		RecentMovements: make([]dto.MovementLogDTO, 0, len(recent)),
		ActiveProjects:  make([]dto.ProjectDTO, 0, len(active)),
	}
	for i := range recent {
		overview.RecentMovements = append(overview.RecentMovements, movementToDTO(&recent[i]))
	}
	for i := range active {
		overview.ActiveProjects = append(overview.ActiveProjects, projectToDTO(&active[i]))
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardOverviewCacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return &overview, nil
}

func (s *DashboardService) Charts(ctx context.Context) (*dto.DashboardChartsDTO, error) {
	movementsByDay, err := s.dashboardRepo.MovementsByDay(ctx, 30)
	if err != nil {
		return nil, err
	}
	projectsByStatus, err := s.dashboardRepo.ProjectsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	cranesByStatus, err := s.dashboardRepo.CranesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	projectsByMonth, err := s.dashboardRepo.ProjectsByMonth(ctx, 12)
	if err != nil {
		return nil, err
	}
	topEquipment, err := s.dashboardRepo.TopEquipmentTypes(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardChartsDTO{
		MovementsByDay:    movementsByDay,
		ProjectsByStatus:  projectsByStatus,
		CranesByStatus:    cranesByStatus,
		ProjectsByMonth:   projectsByMonth,
		TopEquipmentTypes: topEquipment,
	}, nil
}
