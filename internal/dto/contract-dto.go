package dto

type CreateContractDTO struct {
	// Showroom dạng tự do; hệ thống tự resolve chi nhánh + cấp số VSO.
	Showroom string `json:"showroom" validate:"required,max=150"`

	SalesConsultant string `json:"tvbh" validate:"required,max=100"`
	CustomerName    string `json:"ten_kh" validate:"required,max=150"`
	Phone           string `json:"so_dien_thoai" validate:"required,e164_VN"`
	Email           string `json:"email" validate:"omitempty,email"`
	Address         string `json:"dia_chi" validate:"omitempty,max=250"`
	IdentityNumber  string `json:"cccd" validate:"omitempty,len=12,number"`

	Model    string `json:"dong_xe" validate:"required,max=30"`
	Variant  string `json:"phien_ban" validate:"omitempty,max=50"`
	Exterior string `json:"ngoai_that" validate:"omitempty,max=50"`
	Interior string `json:"noi_that" validate:"omitempty,max=50"`

	ListedPrice   string `json:"gia_niem_yet" validate:"required,number"`
	DiscountPrice string `json:"gia_giam" validate:"omitempty,number"`
	ContractPrice string `json:"gia_hop_dong" validate:"required,number"`
	Deposit       string `json:"so_tien_coc" validate:"omitempty,number"`
	LoanAmount    string `json:"so_tien_vay" validate:"omitempty,number"`

	Bank      string `json:"ngan_hang" validate:"omitempty,max=100"`
	Gift      string `json:"qua_tang" validate:"omitempty,max=250"`
	OtherGift string `json:"qua_tang_khac" validate:"omitempty,max=250"`
}

type UpdateContractDTO struct {
	Showroom        string `json:"showroom" validate:"omitempty,max=150"`
	SalesConsultant string `json:"tvbh" validate:"omitempty,max=100"`
	CustomerName    string `json:"ten_kh" validate:"omitempty,max=150"`
	Phone           string `json:"so_dien_thoai" validate:"omitempty,e164_VN"`
	Email           string `json:"email" validate:"omitempty,email"`
	Address         string `json:"dia_chi" validate:"omitempty,max=250"`
	IdentityNumber  string `json:"cccd" validate:"omitempty,len=12,number"`

	Model    string `json:"dong_xe" validate:"omitempty,max=30"`
	Variant  string `json:"phien_ban" validate:"omitempty,max=50"`
	Exterior string `json:"ngoai_that" validate:"omitempty,max=50"`
	Interior string `json:"noi_that" validate:"omitempty,max=50"`

	ListedPrice   string `json:"gia_niem_yet" validate:"omitempty,number"`
	DiscountPrice string `json:"gia_giam" validate:"omitempty,number"`
	ContractPrice string `json:"gia_hop_dong" validate:"omitempty,number"`
	Deposit       string `json:"so_tien_coc" validate:"omitempty,number"`
	LoanAmount    string `json:"so_tien_vay" validate:"omitempty,number"`

	Bank      string `json:"ngan_hang" validate:"omitempty,max=100"`
	Status    string `json:"tinh_trang" validate:"omitempty,oneof=moi da_coc da_xhd da_giao huy"`
	Gift      string `json:"qua_tang" validate:"omitempty,max=250"`
	OtherGift string `json:"qua_tang_khac" validate:"omitempty,max=250"`
}
