package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTruckRouter(g *echo.Group, ctrl *controllers.TruckController) {
	g.GET("/trucks", ctrl.GetTrucks)
	g.GET("/trucks/:id", ctrl.FindTruck)
	g.POST("/trucks", ctrl.CreateTruck)
	g.PUT("/trucks/:id", ctrl.UpdateTruck)
	g.DELETE("/trucks/:id", ctrl.DeleteTruck)
	g.POST("/trucks/:id/move", ctrl.MoveTruck)
	g.GET("/trucks/:id/movements", ctrl.TruckMovements)
}
