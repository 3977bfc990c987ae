package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-system/internal/services"
	"contract-system/pkg/utils"
)

type PromotionController struct {
	promotionService *services.PromotionService
	logger           *zap.Logger
}

func NewPromotionController(promotionService *services.PromotionService, logger *zap.Logger) *PromotionController {
	return &PromotionController{
		promotionService: promotionService,
		logger:           logger,
	}
}

// GetPromotions trả danh mục khuyến mãi, lọc theo ?dong_xe=vf_3 nếu có.
func (c *PromotionController) GetPromotions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	model := ctx.QueryParam("dong_xe")

	promotions, err := c.promotionService.GetPromotions(reqCtx, model)
	if err != nil {
		c.logger.Error("Lỗi lấy danh mục khuyến mãi", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, promotions, "Lấy danh mục khuyến mãi thành công", http.StatusOK)
}
