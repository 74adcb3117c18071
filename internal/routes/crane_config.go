package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCraneConfigRouter(g *echo.Group, ctrl *controllers.CraneConfigController) {
	g.GET("/crane-configs/templates", ctrl.GetTemplates)
	g.GET("/crane-configs/templates/:id", ctrl.FindTemplate)
	g.POST("/crane-configs/templates", ctrl.CreateTemplate)
	g.DELETE("/crane-configs/templates/:id", ctrl.DeleteTemplate)
	g.POST("/crane-configs/templates/:id/diagram", ctrl.UploadDiagram)
	g.GET("/crane-configs/templates/:id/check-availability", ctrl.CheckAvailability)
}
