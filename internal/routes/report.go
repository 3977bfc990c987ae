package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/contracts", ctrl.GetReport)
}
