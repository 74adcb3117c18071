package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CraneController struct {
	craneService    services.CraneServiceInterface
	movementService services.MovementServiceInterface
	craneImporter   services.CraneImporterInterface
	logger          *zap.Logger
}

func NewCraneController(
	craneService services.CraneServiceInterface,
	movementService services.MovementServiceInterface,
	craneImporter services.CraneImporterInterface,
	logger *zap.Logger,
) *CraneController {
	return &CraneController{
		craneService:    craneService,
		movementService: movementService,
		craneImporter:   craneImporter,
		logger:          logger,
	}
}

func (c *CraneController) GetCranes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	cranes, total, err := c.craneService.GetCranes(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, cranes, "cranes fetched", http.StatusOK, total)
}

func (c *CraneController) FindCrane(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	crane, err := c.craneService.FindCrane(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, crane, "crane found", http.StatusOK)
}

func (c *CraneController) CreateCrane(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateCraneDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	crane, err := c.craneService.CreateCrane(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, crane, "crane created", http.StatusCreated)
}

func (c *CraneController) UpdateCrane(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCraneDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	crane, err := c.craneService.UpdateCrane(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, crane, "crane updated", http.StatusOK)
}

func (c *CraneController) DeleteCrane(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.craneService.DeleteCrane(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "crane deleted", http.StatusOK)
}

// MoveCrane records a movement for the crane and relocates it.
func (c *CraneController) MoveCrane(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.MoveCraneDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.movementService.RecordMovement(reqCtx, dto.CreateMovementDTO{
		ResourceType: "CRANE",
		ResourceID:   id,
		ToLocationID: payload.ToLocationID,
		MovedBy:      payload.MovedBy,
		Notes:        payload.Notes,
	}); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	crane, err := c.craneService.FindCrane(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, crane, "crane moved", http.StatusOK)
}

func (c *CraneController) CraneMovements(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movements, err := c.movementService.History(reqCtx, "CRANE", id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "crane movements fetched", http.StatusOK)
}

// ImportCranes ingests the semicolon-delimited fleet list upload.
func (c *CraneController) ImportCranes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("file is required"), c.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	result, err := c.craneImporter.ImportFleetList(reqCtx, file)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "fleet list imported", http.StatusOK)
}
