package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard/overview", ctrl.Overview)
	g.GET("/dashboard/charts", ctrl.Charts)
}
