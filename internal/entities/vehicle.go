package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// Vehicle - một xe trong kho (trang Danh Sách Xe).
type Vehicle struct {
	ID       uint64      `json:"id"`
	VIN      string      `json:"so_khung"`
	Model    string      `json:"dong_xe"`
	Variant  null.String `json:"phien_ban"`
	Exterior null.String `json:"ngoai_that"`
	Interior null.String `json:"noi_that"`

	ListedPrice decimal.Decimal `json:"gia_niem_yet"`

	// Status: trong_kho | da_coc | da_ban.
	Status string `json:"tinh_trang"`

	BranchCode null.String `json:"ma_dms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
