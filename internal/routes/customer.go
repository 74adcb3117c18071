package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCustomerRouter(g *echo.Group, ctrl *controllers.CustomerController) {
	g.GET("/customers", ctrl.GetCustomers)
	g.GET("/customers/:id", ctrl.FindCustomer)
	g.GET("/customers/:id/projects", ctrl.CustomerProjects)
	g.POST("/customers", ctrl.CreateCustomer)
	g.PUT("/customers/:id", ctrl.UpdateCustomer)
	g.DELETE("/customers/:id", ctrl.DeleteCustomer)
}
