package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-system/internal/directory"
	"contract-system/internal/dto"
	"contract-system/internal/entities"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/utils"
)

// BranchController phục vụ danh bạ chi nhánh tĩnh và resolve tên showroom.
type BranchController struct {
	logger *zap.Logger
}

func NewBranchController(logger *zap.Logger) *BranchController {
	return &BranchController{logger: logger}
}

func toBranchDTO(b *entities.Branch) dto.BranchDTO {
	return dto.BranchDTO{
		ID:          b.ID,
		BranchCode:  b.BranchCode,
		DisplayName: b.DisplayName,
		ShortName:   b.ShortName,
		LegalName:   b.LegalName,
		Address:     b.Address,
		TaxCode:     b.TaxCode,
	}
}

func toBranchDocumentDTO(b *entities.Branch) dto.BranchDocumentDTO {
	return dto.BranchDocumentDTO{
		BranchDTO:          toBranchDTO(b),
		HeaderName:         b.HeaderName,
		BankName:           b.BankName,
		BankAccount:        b.BankAccount,
		BankBranch:         b.BankBranch,
		AccountHolder:      b.AccountHolder,
		RepresentativeName: b.RepresentativeName,
		Position:           b.Position,
	}
}

func (c *BranchController) GetBranches(ctx echo.Context) error {
	all := directory.All()
	list := make([]dto.BranchDTO, 0, len(all))
	for i := range all {
		list = append(list, toBranchDTO(&all[i]))
	}

	return utils.SuccessResponse(ctx, list, "Lấy danh sách chi nhánh thành công", http.StatusOK)
}

func (c *BranchController) FindBranch(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID chi nhánh không hợp lệ"), c.logger)
	}

	branch := directory.GetByID(id)
	if branch == nil {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Không tìm thấy chi nhánh"), c.logger)
	}

	return utils.SuccessResponse(ctx, toBranchDocumentDTO(branch), "Tìm thấy chi nhánh", http.StatusOK)
}

func (c *BranchController) FindByCode(ctx echo.Context) error {
	branch := directory.GetByCode(ctx.Param("code"))
	if branch == nil {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Không tìm thấy chi nhánh"), c.logger)
	}

	return utils.SuccessResponse(ctx, toBranchDocumentDTO(branch), "Tìm thấy chi nhánh", http.StatusOK)
}

// ResolveShowroom resolve tên showroom tự do thành chi nhánh. Không
// resolve được trả 404 để form tự quyết (hiện placeholder, không đoán).
func (c *BranchController) ResolveShowroom(ctx echo.Context) error {
	showroom := ctx.QueryParam("showroom")
	if showroom == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Thiếu tham số showroom"), c.logger)
	}

	branch := directory.Resolve(showroom)
	if branch == nil {
		c.logger.Debug("Không resolve được showroom", zap.String("showroom", showroom))
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Không xác định được chi nhánh từ tên showroom"), c.logger)
	}

	return utils.SuccessResponse(ctx, toBranchDocumentDTO(branch), "Resolve chi nhánh thành công", http.StatusOK)
}
