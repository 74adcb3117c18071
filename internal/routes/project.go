package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runProjectRouter(g *echo.Group, ctrl *controllers.ProjectController) {
	g.GET("/projects", ctrl.GetProjects)
	g.GET("/projects/:id", ctrl.FindProject)
	g.POST("/projects", ctrl.CreateProject)
	g.PUT("/projects/:id", ctrl.UpdateProject)
	g.DELETE("/projects/:id", ctrl.DeleteProject)

	g.GET("/projects/:id/assignments", ctrl.ActiveAssignments)
	g.GET("/projects/:id/assignment-history", ctrl.AssignmentHistory)
	g.POST("/projects/:id/assign", ctrl.AssignResource)
	g.POST("/projects/:id/assignments/:assignId/unassign", ctrl.UnassignResource)
	g.DELETE("/projects/:id/assignments/:assignId", ctrl.UnassignResource)
	g.POST("/projects/:id/assignments/:assignId/reason", ctrl.AmendUnassignReason)

	g.GET("/projects/:id/crane-configs", ctrl.GetProjectConfigs)
	g.POST("/projects/:id/crane-configs", ctrl.AssignProjectConfig)
}
