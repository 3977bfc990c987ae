package routes

import (
	"github.com/labstack/echo/v4"

	"contract-system/internal/controllers"
)

func runPromotionRouter(g *echo.Group, ctrl *controllers.PromotionController) {
	g.GET("/promotions", ctrl.GetPromotions)
}
