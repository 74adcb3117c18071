package controllers

import (
	"net/http"
	"strings"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MovementController struct {
	movementService services.MovementServiceInterface
	logger          *zap.Logger
}

func NewMovementController(movementService services.MovementServiceInterface, logger *zap.Logger) *MovementController {
	return &MovementController{movementService: movementService, logger: logger}
}

func (c *MovementController) GetMovements(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	movements, total, err := c.movementService.GetMovements(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "movements fetched", http.StatusOK, total)
}

func (c *MovementController) FindMovement(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movement, err := c.movementService.FindMovement(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movement, "movement found", http.StatusOK)
}

func (c *MovementController) ResourceHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	resourceType := strings.ToUpper(ctx.Param("type"))
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movements, err := c.movementService.History(reqCtx, resourceType, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "movement history fetched", http.StatusOK)
}

func (c *MovementController) RecordMovement(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMovementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movement, err := c.movementService.RecordMovement(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movement, "movement recorded", http.StatusCreated)
}
