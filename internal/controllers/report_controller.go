package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"contract-system/internal/entities"
	"contract-system/internal/services"
	"contract-system/pkg/utils"
)

// ReportController xuất danh sách hợp đồng, dạng JSON hoặc file xlsx.
type ReportController struct {
	contractService *services.ContractService
	logger          *zap.Logger
}

func NewReportController(contractService *services.ContractService, logger *zap.Logger) *ReportController {
	return &ReportController{contractService: contractService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		// Xuất toàn bộ cho file.
		filter.Offset = 0
		filter.Limit = 100000
	}

	data, total, err := c.contractService.GetContracts(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Tạo báo cáo hợp đồng thành công", http.StatusOK, total)
}

var reportHeaders = []string{
	"STT", "Số VSO", "Chi nhánh", "Showroom", "TVBH", "Tên KH", "SĐT",
	"Dòng xe", "Phiên bản", "Giá niêm yết", "Giá hợp đồng", "Số tiền cọc",
	"Số tiền phải thu", "Ngân hàng", "Tình trạng", "Ngày tạo",
}

func rowToSlice(stt int, item entities.Contract) []interface{} {
	var deposit, receivable string
	if item.Deposit.Valid {
		deposit = item.Deposit.Decimal.String()
	}
	if item.Receivable.Valid {
		receivable = item.Receivable.Decimal.String()
	}

	return []interface{}{
		stt, item.VSONumber, item.BranchCode, item.Showroom,
		item.SalesConsultant, item.CustomerName, item.Phone,
		item.Model, item.Variant.String,
		item.ListedPrice.String(), item.ContractPrice.String(), deposit,
		receivable, item.Bank.String, item.Status,
		item.CreatedAt.Format("02.01.2006 15:04"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.Contract) error {
	f := excelize.NewFile()
	sheet := "Hợp đồng"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "P1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(i+1, item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "D", 20)
	f.SetColWidth(sheet, "F", "F", 25)
	f.SetColWidth(sheet, "J", "M", 18)

	fileName := fmt.Sprintf("hop_dong_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
