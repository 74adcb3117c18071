package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipment/types", ctrl.GetEquipmentTypes)
	g.POST("/equipment/types", ctrl.CreateEquipmentType)

	g.GET("/equipment/items", ctrl.GetEquipmentItems)
	g.GET("/equipment/items/:id", ctrl.FindEquipmentItem)
	g.POST("/equipment/items", ctrl.CreateEquipmentItem)
	g.PUT("/equipment/items/:id/location", ctrl.SetEquipmentLocation)
	g.GET("/equipment/items/:id/movements", ctrl.EquipmentMovements)
}
