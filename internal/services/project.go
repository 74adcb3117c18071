package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProjectServiceInterface interface {
	GetProjects(ctx context.Context, filter types.Filter) ([]dto.ProjectDTO, uint64, error)
	FindProject(ctx context.Context, id uint64) (*dto.ProjectDTO, error)
	CreateProject(ctx context.Context, payload dto.CreateProjectDTO) (*dto.ProjectDTO, error)
	UpdateProject(ctx context.Context, id uint64, payload dto.UpdateProjectDTO) (*dto.ProjectDTO, error)
	DeleteProject(ctx context.Context, id uint64) error

	ActiveAssignments(ctx context.Context, projectID uint64) ([]dto.AssignmentDTO, error)
	AssignmentHistory(ctx context.Context, projectID uint64) ([]dto.AssignmentDTO, error)
	AssignResource(ctx context.Context, projectID uint64, payload dto.AssignResourceDTO) (uint64, error)
	UnassignResource(ctx context.Context, projectID, assignmentID uint64, payload dto.UnassignResourceDTO) error
	AmendUnassignReason(ctx context.Context, projectID, assignmentID uint64, payload dto.AmendUnassignReasonDTO) error
}

type ProjectService struct {
	txManager      repositories.TxManagerInterface
	projectRepo    repositories.ProjectRepositoryInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	personRepo     repositories.PersonRepositoryInterface
	logger         *zap.Logger
}

func NewProjectService(
	txManager repositories.TxManagerInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	personRepo repositories.PersonRepositoryInterface,
	logger *zap.Logger,
) ProjectServiceInterface {
	return &ProjectService{
		txManager:      txManager,
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		personRepo:     personRepo,
		logger:         logger,
	}
}

func (s *ProjectService) GetProjects(ctx context.Context, filter types.Filter) ([]dto.ProjectDTO, uint64, error) {
	projects, total, err := s.projectRepo.GetProjects(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ProjectDTO, 0, len(projects))
	for i := range projects {
		out = append(out, s.projectWithPersons(ctx, &projects[i]))
	}
	return out, total, nil
}

func (s *ProjectService) projectWithPersons(ctx context.Context, project *entities.Project) dto.ProjectDTO {
	out := projectToDTO(project)
	if project.ProjectEngineerID != nil {
		if person, err := s.personRepo.FindPerson(ctx, *project.ProjectEngineerID); err == nil {
			out.ProjectEngineerName = &person.Name
		}
	}
	if project.ProjectSiteManagerID != nil {
		if person, err := s.personRepo.FindPerson(ctx, *project.ProjectSiteManagerID); err == nil {
			out.ProjectSiteManagerName = &person.Name
		}
	}
	return out
}

func (s *ProjectService) FindProject(ctx context.Context, id uint64) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindProject(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, err
	}

	out := s.projectWithPersons(ctx, project)

	assignments, err := s.assignmentRepo.ActiveByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		out.Assignments = append(out.Assignments, assignmentToDTO(&assignments[i]))
	}

	return &out, nil
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperrors.NewBadRequestError(field + " must be YYYY-MM-DD")
	}
	return &t, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, payload dto.CreateProjectDTO) (*dto.ProjectDTO, error) {
	startDate, err := parseDate(payload.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(payload.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	status := "PLANNED"
	if payload.Status != nil {
		status = *payload.Status
	}

	project := entities.Project{
		Name:                 payload.Name,
		CustomerID:           nullIntToPtr(payload.CustomerID),
		LocationID:           nullIntToPtr(payload.LocationID),
		StartDate:            startDate,
		EndDate:              endDate,
		Status:               status,
		Notes:                payload.Notes,
		ProjectEngineerID:    nullIntToPtr(payload.ProjectEngineerID),
		ProjectSiteManagerID: nullIntToPtr(payload.ProjectSiteManagerID),
	}

	id, err := s.projectRepo.CreateProject(ctx, &project)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created", zap.Uint64("id", id), zap.String("name", project.Name))
	return s.FindProject(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, payload dto.UpdateProjectDTO) (*dto.ProjectDTO, error) {
	startDate, err := parseDate(payload.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(payload.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	actualStart, err := parseDate(payload.ActualStartDate, "actual_start_date")
	if err != nil {
		return nil, err
	}
	actualEnd, err := parseDate(payload.ActualEndDate, "actual_end_date")
	if err != nil {
		return nil, err
	}

	project := entities.Project{
		Name:                 payload.Name,
		CustomerID:           nullIntToPtr(payload.CustomerID),
		LocationID:           nullIntToPtr(payload.LocationID),
		StartDate:            startDate,
		EndDate:              endDate,
		ActualStartDate:      actualStart,
		ActualEndDate:        actualEnd,
		Status:               payload.Status,
		Notes:                payload.Notes,
		ProjectEngineerID:    nullIntToPtr(payload.ProjectEngineerID),
		ProjectSiteManagerID: nullIntToPtr(payload.ProjectSiteManagerID),
	}

	if err := s.projectRepo.UpdateProject(ctx, id, &project); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, err
	}

	return s.FindProject(ctx, id)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	if err := s.projectRepo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("project not found")
		}
		return err
	}
	s.logger.Info("project deleted", zap.Uint64("id", id))
	return nil
}

func (s *ProjectService) ActiveAssignments(ctx context.Context, projectID uint64) ([]dto.AssignmentDTO, error) {
	assignments, err := s.assignmentRepo.ActiveByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AssignmentDTO, 0, len(assignments))
	for i := range assignments {
		out = append(out, assignmentToDTO(&assignments[i]))
	}
	return out, nil
}

func (s *ProjectService) AssignmentHistory(ctx context.Context, projectID uint64) ([]dto.AssignmentDTO, error) {
	assignments, err := s.assignmentRepo.HistoryByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AssignmentDTO, 0, len(assignments))
	for i := range assignments {
		out = append(out, assignmentToDTO(&assignments[i]))
	}
	return out, nil
}

// AssignResource opens an assignment. Cranes and trucks are exclusive: an
// open assignment on another ACTIVE project blocks the new one. The check
// and the insert run in one transaction under a per-resource advisory lock,
// so two concurrent requests for the same resource serialize and the loser
// sees the winner's row.
func (s *ProjectService) AssignResource(ctx context.Context, projectID uint64, payload dto.AssignResourceDTO) (uint64, error) {
	if !entities.IsAssignableResourceType(payload.ResourceType) {
		return 0, apperrors.NewBadRequestError("unknown resource type")
	}

	if _, err := s.projectRepo.FindProject(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewNotFoundError("project not found")
		}
		return 0, err
	}

	var assignmentID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if entities.ExclusiveResourceType(payload.ResourceType) {
			if err := s.assignmentRepo.LockResource(ctx, tx, payload.ResourceType, payload.ResourceID); err != nil {
				return err
			}

			conflict, err := s.assignmentRepo.FindOpenConflict(ctx, tx, payload.ResourceType, payload.ResourceID, projectID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			if conflict != nil {
				name := ""
				if conflict.ProjectName != nil {
					name = *conflict.ProjectName
				}
				return apperrors.NewConflictError(fmt.Sprintf("resource already active on project %q", name))
			}
		}

		assignment := entities.ProjectAssignment{
			ProjectID:    projectID,
			ResourceType: payload.ResourceType,
			ResourceID:   payload.ResourceID,
			AssignedAt:   time.Now(),
			Notes:        payload.Notes,
		}
		id, err := s.assignmentRepo.InsertTx(ctx, tx, &assignment)
		if err != nil {
			return err
		}
		assignmentID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("resource assigned",
		zap.Uint64("project_id", projectID),
		zap.String("resource_type", payload.ResourceType),
		zap.Uint64("resource_id", payload.ResourceID),
	)
	return assignmentID, nil
}

func (s *ProjectService) UnassignResource(ctx context.Context, projectID, assignmentID uint64, payload dto.UnassignResourceDTO) error {
	err := s.assignmentRepo.CloseAssignment(ctx, projectID, assignmentID, time.Now(), payload.Reason)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("assignment not found")
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewConflictError("assignment already closed")
		}
		return err
	}

	s.logger.Info("resource unassigned",
		zap.Uint64("project_id", projectID),
		zap.Uint64("assignment_id", assignmentID),
	)
	return nil
}

// AmendUnassignReason rewrites the reason on a closed assignment without
// touching the interval itself.
func (s *ProjectService) AmendUnassignReason(ctx context.Context, projectID, assignmentID uint64, payload dto.AmendUnassignReasonDTO) error {
	if err := s.assignmentRepo.AmendReason(ctx, projectID, assignmentID, payload.Reason); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("closed assignment not found")
		}
		return err
	}
	return nil
}
