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

type TruckController struct {
	truckService    services.TruckServiceInterface
	movementService services.MovementServiceInterface
	logger          *zap.Logger
}

func NewTruckController(
	truckService services.TruckServiceInterface,
	movementService services.MovementServiceInterface,
	logger *zap.Logger,
) *TruckController {
	return &TruckController{
		truckService:    truckService,
		movementService: movementService,
		logger:          logger,
	}
}

func (c *TruckController) GetTrucks(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	trucks, total, err := c.truckService.GetTrucks(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, trucks, "trucks fetched", http.StatusOK, total)
}

func (c *TruckController) FindTruck(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	truck, err := c.truckService.FindTruck(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, truck, "truck found", http.StatusOK)
}

func (c *TruckController) CreateTruck(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateTruckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	truck, err := c.truckService.CreateTruck(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, truck, "truck created", http.StatusCreated)
}

func (c *TruckController) UpdateTruck(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateTruckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	truck, err := c.truckService.UpdateTruck(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, truck, "truck updated", http.StatusOK)
}

func (c *TruckController) DeleteTruck(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.truckService.DeleteTruck(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "truck deleted", http.StatusOK)
}

func (c *TruckController) MoveTruck(ctx echo.Context) error {
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
		ResourceType: "TRUCK",
		ResourceID:   id,
		ToLocationID: payload.ToLocationID,
		MovedBy:      payload.MovedBy,
		Notes:        payload.Notes,
	}); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	truck, err := c.truckService.FindTruck(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, truck, "truck moved", http.StatusOK)
}

func (c *TruckController) TruckMovements(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movements, err := c.movementService.History(reqCtx, "TRUCK", id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "truck movements fetched", http.StatusOK)
}
