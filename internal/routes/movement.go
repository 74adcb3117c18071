package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMovementRouter(g *echo.Group, ctrl *controllers.MovementController) {
	g.GET("/movements", ctrl.GetMovements)
	g.GET("/movements/resource/:type/:id", ctrl.ResourceHistory)
	g.GET("/movements/:id", ctrl.FindMovement)
	g.POST("/movements", ctrl.RecordMovement)
}
