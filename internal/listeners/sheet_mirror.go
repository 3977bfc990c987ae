package listeners

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"contract-system/internal/entities"
	"contract-system/internal/events"
	"contract-system/pkg/eventbus"
)

// SheetMirror ghi bản sao hợp đồng vào một workbook Excel cục bộ, thay
// cho cặp trigger onContractExported/onContractUpdated đẩy lên Google
// Sheets trước đây. Hợp đồng mới append một dòng; hợp đồng sửa được tìm
// theo doc_uid và ghi đè tại chỗ.
type SheetMirror struct {
	path   string
	sheet  string
	mu     sync.Mutex
	logger *zap.Logger
}

func NewSheetMirror(path, sheet string, logger *zap.Logger) *SheetMirror {
	return &SheetMirror{path: path, sheet: sheet, logger: logger}
}

// Register đăng ký listener vào event bus.
func (m *SheetMirror) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ContractExportedEvent, m.onContractExported)
	bus.Subscribe(events.ContractUpdatedEvent, m.onContractUpdated)
}

var mirrorHeaders = []string{
	"STT", "Số VSO", "Ngày XHĐ", "TVBH", "Tên KH", "SĐT", "Email", "Địa chỉ", "CCCD",
	"Dòng xe", "Phiên bản", "Ngoại thất", "Nội thất",
	"Giá niêm yết", "Giá giảm", "Giá hợp đồng", "Số tiền cọc",
	"Tình trạng", "Ngân hàng", "Số tiền vay", "Số tiền phải thu",
	"Quà tặng", "Quà tặng khác", "Mã hồ sơ", "Đồng bộ lúc",
}

// Cột chứa doc_uid, dùng để tìm dòng khi update.
const docUIDColumn = "X"

func contractRow(stt int, c entities.Contract) []interface{} {
	var invoiceDate string
	if c.InvoiceDate.Valid {
		invoiceDate = c.InvoiceDate.Time.Format("02.01.2006")
	}

	var discount, deposit, loan, receivable string
	if c.DiscountPrice.Valid {
		discount = c.DiscountPrice.Decimal.String()
	}
	if c.Deposit.Valid {
		deposit = c.Deposit.Decimal.String()
	}
	if c.LoanAmount.Valid {
		loan = c.LoanAmount.Decimal.String()
	}
	if c.Receivable.Valid {
		receivable = c.Receivable.Decimal.String()
	}

	return []interface{}{
		stt, c.VSONumber, invoiceDate, c.SalesConsultant, c.CustomerName, c.Phone,
		c.Email.String, c.Address.String, c.IdentityNumber.String,
		c.Model, c.Variant.String, c.Exterior.String, c.Interior.String,
		c.ListedPrice.String(), discount, c.ContractPrice.String(), deposit,
		c.Status, c.Bank.String, loan, receivable,
		c.Gift.String, c.OtherGift.String, c.DocUID,
		time.Now().Format(time.RFC3339),
	}
}

func (m *SheetMirror) onContractExported(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ContractExported)
	if !ok {
		return fmt.Errorf("sự kiện không đúng kiểu: %T", event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.openWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(m.sheet)
	if err != nil {
		return err
	}
	nextRow := len(rows) + 1

	cell, _ := excelize.CoordinatesToCellName(1, nextRow)
	row := contractRow(nextRow-1, e.Contract)
	if err := f.SetSheetRow(m.sheet, cell, &row); err != nil {
		return err
	}

	if err := f.SaveAs(m.path); err != nil {
		return err
	}

	m.logger.Info("Đã mirror hợp đồng mới vào workbook",
		zap.String("vso", e.Contract.VSONumber),
		zap.Int("row", nextRow),
	)
	return nil
}

func (m *SheetMirror) onContractUpdated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ContractUpdated)
	if !ok {
		return fmt.Errorf("sự kiện không đúng kiểu: %T", event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.openWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	// Tìm dòng theo doc_uid; không thấy thì append như hợp đồng mới.
	rowIndex := 0
	cols, err := f.GetCols(m.sheet)
	if err != nil {
		return err
	}
	colIndex, _ := excelize.ColumnNameToNumber(docUIDColumn)
	if len(cols) >= colIndex {
		for i, v := range cols[colIndex-1] {
			if v == e.Contract.DocUID {
				rowIndex = i + 1
				break
			}
		}
	}

	if rowIndex == 0 {
		rows, err := f.GetRows(m.sheet)
		if err != nil {
			return err
		}
		rowIndex = len(rows) + 1
	}

	cell, _ := excelize.CoordinatesToCellName(1, rowIndex)
	row := contractRow(rowIndex-1, e.Contract)
	if err := f.SetSheetRow(m.sheet, cell, &row); err != nil {
		return err
	}

	if err := f.SaveAs(m.path); err != nil {
		return err
	}

	m.logger.Info("Đã mirror hợp đồng cập nhật vào workbook",
		zap.String("vso", e.Contract.VSONumber),
		zap.Int("row", rowIndex),
	)
	return nil
}

// openWorkbook mở workbook mirror, tạo mới kèm dòng header nếu chưa có.
func (m *SheetMirror) openWorkbook() (*excelize.File, error) {
	if _, err := os.Stat(m.path); err == nil {
		f, err := excelize.OpenFile(m.path)
		if err != nil {
			return nil, fmt.Errorf("lỗi mở workbook mirror: %w", err)
		}
		return f, nil
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", m.sheet)
	if err := f.SetSheetRow(m.sheet, "A1", &mirrorHeaders); err != nil {
		return nil, err
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	endCell, _ := excelize.CoordinatesToCellName(len(mirrorHeaders), 1)
	f.SetCellStyle(m.sheet, "A1", endCell, style)

	return f, nil
}
