package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCraneRouter(g *echo.Group, ctrl *controllers.CraneController) {
	g.GET("/cranes", ctrl.GetCranes)
	g.GET("/cranes/:id", ctrl.FindCrane)
	g.POST("/cranes", ctrl.CreateCrane)
	g.PUT("/cranes/:id", ctrl.UpdateCrane)
	g.DELETE("/cranes/:id", ctrl.DeleteCrane)
	g.POST("/cranes/:id/move", ctrl.MoveCrane)
	g.GET("/cranes/:id/movements", ctrl.CraneMovements)
	g.POST("/cranes/import", ctrl.ImportCranes)
}
