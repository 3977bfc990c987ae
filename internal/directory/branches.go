package directory

import "contract-system/internal/entities"

// Dữ liệu các chi nhánh VinFast Đông Sài Gòn.
// Đồng bộ từ Google Sheet - Thông tin chi nhánh.
var branches = []entities.Branch{
	{
		ID:          1,
		BranchCode:  "S00501",
		DisplayName: "VinFast Đông Sài Gòn-Thủ Đức",
		ShortName:   "Thủ Đức",
		LegalName:   "CÔNG TY CỔ PHẦN ĐẦU TƯ THƯƠNG MẠI VÀ DỊCH VỤ Ô TÔ ĐÔNG SÀI GÒN",
		HeaderName:  "CÔNG TY CP ĐT TM\nDỊCH VỤ Ô TÔ\nĐÔNG SÀI GÒN",

		Address: "391 Võ Nguyên Giáp, Phường An Khánh, Thành Phố Thủ Đức, Thành Phố Hồ Chí Minh",
		TaxCode: "0316801817",

		BankName:      "VP Bank",
		BankAccount:   "275582875",
		BankBranch:    "Chi Nhánh Đông Sài Gòn",
		AccountHolder: "CT CP DT TM DV OTO DONG SAI GON",

		RepresentativeName: "Nguyễn Thành Trai",
		Position:           "Tổng Giám Đốc",
	},
	{
		ID:          2,
		BranchCode:  "S00901",
		DisplayName: "VinFast Đông Sài Gòn-Chi Nhánh Trường Chinh",
		ShortName:   "Trường Chinh",
		LegalName:   "CHI NHÁNH TRƯỜNG CHINH - CÔNG TY CỔ PHẦN ĐẦU TƯ THƯƠNG MẠI VÀ DỊCH VỤ Ô TÔ ĐÔNG SÀI GÒN",
		HeaderName:  "CÔNG TY CP ĐT TM\nDỊCH VỤ Ô TÔ\nĐÔNG SÀI\nGÒN-CN TRƯỜNG\nCHINH",

		Address: "682A Trường Chinh, Phường Tân Bình, Thành Phố Hồ Chí Minh",
		TaxCode: "0316801817-002",

		BankName:      "VP Bank",
		BankAccount:   "288999",
		BankBranch:    "Chi Nhánh Đông Sài Gòn",
		AccountHolder: "CN TRUONG CHINH CTCP DONG SAI GON",

		RepresentativeName: "Nguyễn Thành Trai",
		Position:           "Tổng Giám Đốc",
	},
	{
		ID:          3,
		BranchCode:  "S41501",
		DisplayName: "VinFast Đông Sài Gòn-Chi Nhánh Âu Cơ",
		ShortName:   "Âu Cơ",
		LegalName:   "CHI NHÁNH ÂU CƠ - CÔNG TY CỔ PHẦN ĐẦU TƯ THƯƠNG MẠI VÀ DỊCH VỤ Ô TÔ ĐÔNG SÀI GÒN",
		HeaderName:  "CÔNG TY CP ĐT TM\nDỊCH VỤ Ô TÔ\nĐÔNG SÀI\nGÒN-CN ÂU CƠ",

		Address: "616 Âu Cơ, Phường Bảy Hiền, Thành Phố Hồ Chí Minh",
		TaxCode: "0316801817-003",

		BankName:      "VP Bank",
		BankAccount:   "390009078",
		BankBranch:    "Chi Nhánh Đông Sài Gòn",
		AccountHolder: "CN AU CO CTCP DONG SAI GON",

		RepresentativeName: "Nguyễn Thành Trai",
		Position:           "Tổng Giám Đốc",
	},
}

// defaultBranchID - chi nhánh mặc định khi không resolve được (Trường Chinh).
const defaultBranchID = 2

// GetByID tìm chi nhánh theo ID. Trả về nil nếu không có.
func GetByID(id int) *entities.Branch {
	for i := range branches {
		if branches[i].ID == id {
			return &branches[i]
		}
	}
	return nil
}

// GetByCode tìm chi nhánh theo mã DMS (vd S00501). Trả về nil nếu không có.
func GetByCode(branchCode string) *entities.Branch {
	if branchCode == "" {
		return nil
	}
	for i := range branches {
		if branches[i].BranchCode == branchCode {
			return &branches[i]
		}
	}
	return nil
}

// All trả về danh sách chi nhánh theo thứ tự khai báo.
func All() []entities.Branch {
	out := make([]entities.Branch, len(branches))
	copy(out, branches)
	return out
}

// Default trả về chi nhánh mặc định (Chi Nhánh Trường Chinh).
func Default() *entities.Branch {
	return GetByID(defaultBranchID)
}
