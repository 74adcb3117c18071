package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runPersonRouter(g *echo.Group, ctrl *controllers.PersonController) {
	g.GET("/persons", ctrl.GetPersons)
	g.GET("/persons/:id", ctrl.FindPerson)
	g.POST("/persons", ctrl.CreatePerson)
	g.PUT("/persons/:id", ctrl.UpdatePerson)
	g.DELETE("/persons/:id", ctrl.DeletePerson)
}
