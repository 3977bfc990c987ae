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

type ContractController struct {
	contractService *services.ContractService
	logger          *zap.Logger
}

func NewContractController(contractService *services.ContractService, logger *zap.Logger) *ContractController {
	return &ContractController{
		contractService: contractService,
		logger:          logger,
	}
}

func (c *ContractController) GetContracts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	contracts, total, err := c.contractService.GetContracts(reqCtx, filter)
	if err != nil {
		c.logger.Error("Lỗi lấy danh sách hợp đồng", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, contracts, "Lấy danh sách hợp đồng thành công", http.StatusOK, total)
}

func (c *ContractController) FindContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID hợp đồng không hợp lệ"), c.logger)
	}

	res, err := c.contractService.FindContract(reqCtx, id)
	if err != nil {
		c.logger.Error("Lỗi tìm hợp đồng", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Tìm thấy hợp đồng", http.StatusOK)
}

func (c *ContractController) FindByVSONumber(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	vsoNumber := ctx.Param("vso")

	res, err := c.contractService.FindByVSONumber(reqCtx, vsoNumber)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Tìm thấy hợp đồng", http.StatusOK)
}

func (c *ContractController) CreateContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var in dto.CreateContractDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Dữ liệu gửi lên sai định dạng"), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.CreateContract(reqCtx, in)
	if err != nil {
		c.logger.Error("Lỗi tạo hợp đồng", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Tạo hợp đồng thành công", http.StatusCreated)
}

func (c *ContractController) UpdateContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID hợp đồng không hợp lệ"), c.logger)
	}

	var in dto.UpdateContractDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Dữ liệu gửi lên sai định dạng"), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.UpdateContract(reqCtx, id, in)
	if err != nil {
		c.logger.Error("Lỗi cập nhật hợp đồng", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Cập nhật hợp đồng thành công", http.StatusOK)
}

func (c *ContractController) DeleteContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID hợp đồng không hợp lệ"), c.logger)
	}

	if err := c.contractService.DeleteContract(reqCtx, id); err != nil {
		c.logger.Error("Lỗi xóa hợp đồng", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
