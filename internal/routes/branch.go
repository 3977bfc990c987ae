package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runBranchRouter(g *echo.Group, ctrl *controllers.BranchController) {
	g.GET("/branches", ctrl.GetBranches)
	g.GET("/branches/resolve", ctrl.ResolveShowroom)
	g.GET("/branches/code/:code", ctrl.FindByCode)
	g.GET("/branches/:id", ctrl.FindBranch)
}
