package dto

// BranchDTO - thông tin chi nhánh trả ra ngoài (không gồm chi tiết ngân hàng).
type BranchDTO struct {
	ID          int    `json:"id"`
	BranchCode  string `json:"ma_dms"`
	DisplayName string `json:"display_name"`
	ShortName   string `json:"short_name"`
	LegalName   string `json:"legal_name"`
	Address     string `json:"address"`
	TaxCode     string `json:"tax_code"`
}

// BranchDocumentDTO - thông tin đầy đủ để đổ vào biểu mẫu in.
type BranchDocumentDTO struct {
	BranchDTO
	HeaderName         string `json:"header_name"`
	BankName           string `json:"bank_name"`
	BankAccount        string `json:"bank_account"`
	BankBranch         string `json:"bank_branch"`
	AccountHolder      string `json:"account_holder"`
	RepresentativeName string `json:"representative_name"`
	Position           string `json:"position"`
}

type ResolveShowroomDTO struct {
	Showroom string `json:"showroom" validate:"required"`
}
