package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// Contract - hồ sơ bán xe (một dòng trong sheet "Hợp đồng").
// Tên trường JSON giữ theo thuật ngữ nghiệp vụ đang dùng trên biểu mẫu.
type Contract struct {
	ID     uint64 `json:"id"`
	DocUID string `json:"doc_uid"`

	// VSONumber - số hợp đồng đã cấp, vd S00901-VSO-25-12-0035.
	VSONumber string `json:"so_vso"`
	// Showroom - tên showroom dạng tự do như nhân viên nhập.
	Showroom string `json:"showroom"`
	// BranchCode - mã DMS chi nhánh đã resolve từ Showroom.
	BranchCode string `json:"ma_dms"`

	SalesConsultant string      `json:"tvbh"`
	CustomerName    string      `json:"ten_kh"`
	Phone           string      `json:"so_dien_thoai"`
	Email           null.String `json:"email"`
	Address         null.String `json:"dia_chi"`
	IdentityNumber  null.String `json:"cccd"`

	Model    string      `json:"dong_xe"`
	Variant  null.String `json:"phien_ban"`
	Exterior null.String `json:"ngoai_that"`
	Interior null.String `json:"noi_that"`

	ListedPrice   decimal.Decimal     `json:"gia_niem_yet"`
	DiscountPrice decimal.NullDecimal `json:"gia_giam"`
	ContractPrice decimal.Decimal     `json:"gia_hop_dong"`
	Deposit       decimal.NullDecimal `json:"so_tien_coc"`
	LoanAmount    decimal.NullDecimal `json:"so_tien_vay"`
	Receivable    decimal.NullDecimal `json:"so_tien_phai_thu"`

	Bank      null.String `json:"ngan_hang"`
	Status    string      `json:"tinh_trang"`
	Gift      null.String `json:"qua_tang"`
	OtherGift null.String `json:"qua_tang_khac"`

	InvoiceDate null.Time `json:"ngay_xhd"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
