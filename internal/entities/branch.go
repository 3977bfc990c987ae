package entities

// Branch - thông tin một chi nhánh VinFast Đông Sài Gòn.
// Danh bạ chi nhánh là dữ liệu tĩnh, đồng bộ tay từ Google Sheet
// "Thông tin chi nhánh"; không thay đổi lúc runtime.
type Branch struct {
	ID          int    `json:"id"`
	BranchCode  string `json:"ma_dms"`
	DisplayName string `json:"display_name"`
	ShortName   string `json:"short_name"`
	// LegalName - tên pháp lý đầy đủ, in trên giấy tờ.
	LegalName string `json:"legal_name"`
	// HeaderName - tên viết tắt cho header biểu mẫu (có xuống dòng).
	HeaderName string `json:"header_name"`

	Address string `json:"address"`
	TaxCode string `json:"tax_code"`

	BankName      string `json:"bank_name"`
	BankAccount   string `json:"bank_account"`
	BankBranch    string `json:"bank_branch"`
	AccountHolder string `json:"account_holder"`

	RepresentativeName string `json:"representative_name"`
	Position           string `json:"position"`
}
