package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runContractRouter(g *echo.Group, ctrl *controllers.ContractController) {
	g.GET("/contracts", ctrl.GetContracts)
	g.GET("/contracts/:id", ctrl.FindContract)
	g.GET("/contracts/vso/:vso", ctrl.FindByVSONumber)
	g.POST("/contracts", ctrl.CreateContract)
	g.PUT("/contracts/:id", ctrl.UpdateContract)
	g.DELETE("/contracts/:id", ctrl.DeleteContract)
}
