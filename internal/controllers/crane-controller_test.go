package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet-system/internal/dto"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCraneService struct {
	findFn func(id uint64) (*dto.CraneDTO, error)
}

func (s *stubCraneService) GetCranes(ctx context.Context, filter types.Filter) ([]dto.CraneDTO, uint64, error) {
	return nil, 0, nil
}

func (s *stubCraneService) FindCrane(ctx context.Context, id uint64) (*dto.CraneDTO, error) {
	if s.findFn == nil {
		return nil, apperrors.NewNotFoundError("crane not found")
	}
	return s.findFn(id)
}

func (s *stubCraneService) CreateCrane(ctx context.Context, payload dto.CreateCraneDTO) (*dto.CraneDTO, error) {
	return nil, nil
}

func (s *stubCraneService) UpdateCrane(ctx context.Context, id uint64, payload dto.UpdateCraneDTO) (*dto.CraneDTO, error) {
	return nil, nil
}

func (s *stubCraneService) DeleteCrane(ctx context.Context, id uint64) error { return nil }

func findCraneRequest(t *testing.T, svc *stubCraneService, id string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cranes/"+id, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/api/v1/cranes/:id")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)

	controller := NewCraneController(svc, nil, nil, zap.NewNop())
	require.NoError(t, controller.FindCrane(ctx))
	return rec
}

func TestFindCraneRejectsNonNumericID(t *testing.T) {
	rec := findCraneRequest(t, &stubCraneService{}, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "invalid id", body["message"])
}

func TestFindCraneMissingIs404(t *testing.T) {
	rec := findCraneRequest(t, &stubCraneService{}, "42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type stubMovementService struct {
	recordFn func(payload dto.CreateMovementDTO) (*dto.MovementLogDTO, error)
}

func (s *stubMovementService) GetMovements(ctx context.Context, filter types.Filter) ([]dto.MovementLogDTO, uint64, error) {
	return nil, 0, nil
}

func (s *stubMovementService) FindMovement(ctx context.Context, id uint64) (*dto.MovementLogDTO, error) {
	return nil, apperrors.NewNotFoundError("movement not found")
}

func (s *stubMovementService) RecordMovement(ctx context.Context, payload dto.CreateMovementDTO) (*dto.MovementLogDTO, error) {
	if s.recordFn == nil {
		return &dto.MovementLogDTO{}, nil
	}
	return s.recordFn(payload)
}

func (s *stubMovementService) History(ctx context.Context, resourceType string, resourceID uint64) ([]dto.MovementLogDTO, error) {
	return nil, nil
}

func TestMoveCraneReturnsUpdatedCrane(t *testing.T) {
	var recorded dto.CreateMovementDTO
	movements := &stubMovementService{
		recordFn: func(payload dto.CreateMovementDTO) (*dto.MovementLogDTO, error) {
			recorded = payload
			return &dto.MovementLogDTO{ID: 7}, nil
		},
	}
	cranes := &stubCraneService{
		findFn: func(id uint64) (*dto.CraneDTO, error) {
			return &dto.CraneDTO{ID: id, Name: "LTM 1100", Type: "MOBILE", Status: "ACTIVE", CurrentLocationID: ptrUint64(5)}, nil
		},
	}

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cranes/42/move", strings.NewReader(`{"to_location_id": 5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/api/v1/cranes/:id/move")
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	controller := NewCraneController(cranes, movements, nil, zap.NewNop())
	require.NoError(t, controller.MoveCrane(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CRANE", recorded.ResourceType)
	assert.Equal(t, uint64(42), recorded.ResourceID)
	assert.Equal(t, uint64(5), recorded.ToLocationID)

	var body struct {
		Status  bool         `json:"status"`
		Message string       `json:"message"`
		Body    dto.CraneDTO `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "crane moved", body.Message)
	assert.Equal(t, uint64(42), body.Body.ID)
	require.NotNil(t, body.Body.CurrentLocationID)
	assert.Equal(t, uint64(5), *body.Body.CurrentLocationID)
}

func ptrUint64(v uint64) *uint64 { return &v }

func TestFindCraneReturnsEnvelope(t *testing.T) {
	svc := &stubCraneService{
		findFn: func(id uint64) (*dto.CraneDTO, error) {
			return &dto.CraneDTO{ID: id, Name: "LTM 1100", Model: "LTM 1100-5.2", Type: "MOBILE", Status: "ACTIVE"}, nil
		},
	}

	rec := findCraneRequest(t, svc, "42")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  bool         `json:"status"`
		Message string       `json:"message"`
		Body    dto.CraneDTO `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "crane found", body.Message)
	assert.Equal(t, uint64(42), body.Body.ID)
	assert.Equal(t, "LTM 1100", body.Body.Name)
}
