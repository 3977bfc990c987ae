package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runVSORouter(g *echo.Group, ctrl *controllers.VSOController) {
	g.GET("/vso/preview", ctrl.PreviewNext)
	g.GET("/vso/validate", ctrl.Validate)
}
