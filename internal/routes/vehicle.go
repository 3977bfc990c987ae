package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runVehicleRouter(g *echo.Group, ctrl *controllers.VehicleController) {
	g.GET("/vehicles", ctrl.GetVehicles)
	g.GET("/vehicles/:id", ctrl.FindVehicle)
	g.POST("/vehicles", ctrl.CreateVehicle)
	g.PUT("/vehicles/:id/status", ctrl.UpdateVehicleStatus)
	g.DELETE("/vehicles/:id", ctrl.DeleteVehicle)
}
