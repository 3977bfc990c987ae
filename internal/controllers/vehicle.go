package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-system/internal/dto"
	"contract-system/internal/services"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/utils"
)

type VehicleController struct {
	vehicleService *services.VehicleService
	logger         *zap.Logger
}

func NewVehicleController(vehicleService *services.VehicleService, logger *zap.Logger) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

func (c *VehicleController) GetVehicles(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	vehicles, total, err := c.vehicleService.GetVehicles(reqCtx, filter)
	if err != nil {
		c.logger.Error("Lỗi lấy danh sách xe", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, vehicles, "Lấy danh sách xe thành công", http.StatusOK, total)
}

func (c *VehicleController) FindVehicle(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID xe không hợp lệ"), c.logger)
	}

	res, err := c.vehicleService.FindVehicle(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Tìm thấy xe", http.StatusOK)
}

func (c *VehicleController) CreateVehicle(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var in dto.CreateVehicleDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Dữ liệu gửi lên sai định dạng"), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.vehicleService.CreateVehicle(reqCtx, in)
	if err != nil {
		c.logger.Error("Lỗi thêm xe vào kho", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Thêm xe thành công", http.StatusCreated)
}

func (c *VehicleController) UpdateVehicleStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID xe không hợp lệ"), c.logger)
	}

	var in dto.UpdateVehicleStatusDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Dữ liệu gửi lên sai định dạng"), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.vehicleService.UpdateVehicleStatus(reqCtx, id, in)
	if err != nil {
		c.logger.Error("Lỗi cập nhật tình trạng xe", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Cập nhật tình trạng xe thành công", http.StatusOK)
}

func (c *VehicleController) DeleteVehicle(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID xe không hợp lệ"), c.logger)
	}

	if err := c.vehicleService.DeleteVehicle(reqCtx, id); err != nil {
		c.logger.Error("Lỗi xóa xe", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
