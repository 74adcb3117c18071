package controllers

import (
	"net/http"

	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) Overview(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	overview, err := c.dashboardService.Overview(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, overview, "dashboard overview fetched", http.StatusOK)
}

func (c *DashboardController) Charts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	charts, err := c.dashboardService.Charts(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, charts, "dashboard charts fetched", http.StatusOK)
}
