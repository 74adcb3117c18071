package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runLocationRouter(g *echo.Group, ctrl *controllers.LocationController) {
	g.GET("/locations", ctrl.GetLocations)
	g.GET("/locations/:id", ctrl.FindLocation)
	g.POST("/locations", ctrl.CreateLocation)
	g.PUT("/locations/:id", ctrl.UpdateLocation)
	g.DELETE("/locations/:id", ctrl.DeleteLocation)
	g.GET("/locations/:id/resources", ctrl.LocationResources)
}
