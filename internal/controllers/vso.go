package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-system/internal/directory"
	"contract-system/internal/dto"
	"contract-system/internal/vso"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/utils"
)

// VSOController - bề mặt HTTP mỏng cho allocator, phục vụ các form.
type VSOController struct {
	allocator *vso.Allocator
	logger    *zap.Logger
}

func NewVSOController(allocator *vso.Allocator, logger *zap.Logger) *VSOController {
	return &VSOController{allocator: allocator, logger: logger}
}

// PreviewNext trả số VSO kế tiếp, chỉ để hiển thị trước khi lưu hồ sơ.
func (c *VSOController) PreviewNext(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	branchCode := ctx.QueryParam("ma_dms")
	if branchCode == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Thiếu tham số ma_dms"), c.logger)
	}
	if directory.GetByCode(branchCode) == nil {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Mã DMS không thuộc chi nhánh nào"), c.logger)
	}

	nextCode, err := c.allocator.PreviewNext(reqCtx, branchCode, time.Now())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()), c.logger)
	}

	body := dto.VSOPreviewDTO{BranchCode: branchCode, NextCode: nextCode}
	return utils.SuccessResponse(ctx, body, "Số VSO kế tiếp (chưa giữ chỗ)", http.StatusOK)
}

// Validate kiểm tra định dạng một số VSO và tách mã chi nhánh.
func (c *VSOController) Validate(ctx echo.Context) error {
	code := ctx.QueryParam("code")

	body := dto.VSOValidateDTO{Code: code, Valid: vso.IsFullFormat(code)}
	if branchCode, ok := vso.ExtractBranchCode(code); ok {
		body.BranchCode = branchCode
	}

	return utils.SuccessResponse(ctx, body, "Kết quả kiểm tra số VSO", http.StatusOK)
}
