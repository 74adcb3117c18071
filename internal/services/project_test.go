package services

import (
	"context"
	"testing"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProjectService(projectRepo *stubProjectRepo, assignmentRepo *stubAssignmentRepo) ProjectServiceInterface {
	return NewProjectService(&stubTxManager{}, projectRepo, assignmentRepo, &stubPersonRepo{}, zap.NewNop())
}

func existingProject(id uint64) *stubProjectRepo {
	return &stubProjectRepo{
		findFn: func(pid uint64) (*entities.Project, error) {
			return &entities.Project{ID: pid, Name: "Bridge"}, nil
		},
	}
}

func TestAssignResourceRejectsUnknownType(t *testing.T) {
	svc := newProjectService(existingProject(1), &stubAssignmentRepo{})

	_, err := svc.AssignResource(context.Background(), 1, dto.AssignResourceDTO{
		ResourceType: "FORKLIFT",
		ResourceID:   1,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestAssignResourceMissingProjectIs404(t *testing.T) {
	svc := newProjectService(&stubProjectRepo{}, &stubAssignmentRepo{})

	_, err := svc.AssignResource(context.Background(), 77, dto.AssignResourceDTO{
		ResourceType: "CRANE",
		ResourceID:   1,
	})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestAssignCraneConflictsWithOpenAssignment(t *testing.T) {
	otherProject := "Harbor Expansion"
	locked := false
	inserted := false

	assignmentRepo := &stubAssignmentRepo{
		lockFn: func(resourceType string, resourceID uint64) error {
			locked = true
			assert.Equal(t, "CRANE", resourceType)
			assert.Equal(t, uint64(5), resourceID)
			return nil
		},
		findConflictFn: func(resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error) {
			return &entities.ProjectAssignment{
				ID:           2,
				ProjectID:    9,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ProjectName:  &otherProject,
			}, nil
		},
		insertFn: func(a *entities.ProjectAssignment) (uint64, error) {
			inserted = true
			return 0, nil
		},
	}

	svc := newProjectService(existingProject(1), assignmentRepo)

	_, err := svc.AssignResource(context.Background(), 1, dto.AssignResourceDTO{
		ResourceType: "CRANE",
		ResourceID:   5,
	})

	require.Error(t, err)
	assert.Equal(t, 409, httpCode(t, err))
	assert.Contains(t, err.Error(), `"Harbor Expansion"`)
	assert.True(t, locked, "advisory lock taken before the conflict check")
	assert.False(t, inserted, "no row written when the resource is busy")
}

func TestAssignCraneSucceedsWithoutConflict(t *testing.T) {
	var captured *entities.ProjectAssignment
	assignmentRepo := &stubAssignmentRepo{
		findConflictFn: func(resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error) {
			return nil, apperrors.ErrNotFound
		},
		insertFn: func(a *entities.ProjectAssignment) (uint64, error) {
			captured = a
			return 33, nil
		},
	}

	svc := newProjectService(existingProject(1), assignmentRepo)

	id, err := svc.AssignResource(context.Background(), 1, dto.AssignResourceDTO{
		ResourceType: "CRANE",
		ResourceID:   5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(33), id)
	require.NotNil(t, captured)
	assert.Equal(t, uint64(1), captured.ProjectID)
	assert.Nil(t, captured.UnassignedAt, "new assignment opens without an end")
	assert.WithinDuration(t, time.Now(), captured.AssignedAt, time.Minute)
}

func TestAssignEquipmentSkipsExclusivityCheck(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{
		lockFn: func(resourceType string, resourceID uint64) error {
			t.Fatal("equipment is not exclusive, no lock expected")
			return nil
		},
		findConflictFn: func(resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error) {
			t.Fatal("equipment is not exclusive, no conflict check expected")
			return nil, nil
		},
		insertFn: func(a *entities.ProjectAssignment) (uint64, error) { return 12, nil },
	}

	svc := newProjectService(existingProject(1), assignmentRepo)

	id, err := svc.AssignResource(context.Background(), 1, dto.AssignResourceDTO{
		ResourceType: "EQUIPMENT",
		ResourceID:   8,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
}

func TestUnassignClosedAssignmentIs409(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{
		closeFn: func(projectID, id uint64, unassignedAt time.Time, reason *string) error {
			return apperrors.ErrConflict
		},
	}
	svc := newProjectService(existingProject(1), assignmentRepo)

	err := svc.UnassignResource(context.Background(), 1, 4, dto.UnassignResourceDTO{})

	require.Error(t, err)
	assert.Equal(t, 409, httpCode(t, err))
	assert.Contains(t, err.Error(), "already closed")
}

func TestUnassignMissingAssignmentIs404(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{
		closeFn: func(projectID, id uint64, unassignedAt time.Time, reason *string) error {
			return apperrors.ErrNotFound
		},
	}
	svc := newProjectService(existingProject(1), assignmentRepo)

	err := svc.UnassignResource(context.Background(), 1, 4, dto.UnassignResourceDTO{})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestUnassignScopedToProject(t *testing.T) {
	var gotProjectID uint64
	assignmentRepo := &stubAssignmentRepo{
		closeFn: func(projectID, id uint64, unassignedAt time.Time, reason *string) error {
			gotProjectID = projectID
			if projectID != 1 {
				return apperrors.ErrNotFound
			}
			return nil
		},
	}
	svc := newProjectService(existingProject(999), assignmentRepo)

	err := svc.UnassignResource(context.Background(), 999, 42, dto.UnassignResourceDTO{})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
	assert.Equal(t, uint64(999), gotProjectID)
}

func TestUnassignPassesReasonThrough(t *testing.T) {
	var gotReason *string
	assignmentRepo := &stubAssignmentRepo{
		closeFn: func(projectID, id uint64, unassignedAt time.Time, reason *string) error {
			gotReason = reason
			return nil
		},
	}
	svc := newProjectService(existingProject(1), assignmentRepo)

	reason := "demobilized"
	err := svc.UnassignResource(context.Background(), 1, 4, dto.UnassignResourceDTO{Reason: &reason})

	require.NoError(t, err)
	require.NotNil(t, gotReason)
	assert.Equal(t, "demobilized", *gotReason)
}

func TestAmendReasonOnOpenAssignmentIs404(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{
		amendFn: func(projectID, id uint64, reason string) error {
			return apperrors.ErrNotFound
		},
	}
	svc := newProjectService(existingProject(1), assignmentRepo)

	err := svc.AmendUnassignReason(context.Background(), 1, 4, dto.AmendUnassignReasonDTO{Reason: "typo fix"})

	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestCreateProjectRejectsBadDate(t *testing.T) {
	svc := newProjectService(existingProject(1), &stubAssignmentRepo{})

	bad := "12/01/2026"
	_, err := svc.CreateProject(context.Background(), dto.CreateProjectDTO{
		Name:      "Bridge",
		StartDate: &bad,
	})

	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}
