package dto

type CreateVehicleDTO struct {
	VIN         string `json:"so_khung" validate:"required,len=17,alphanum"`
	Model       string `json:"dong_xe" validate:"required,max=30"`
	Variant     string `json:"phien_ban" validate:"omitempty,max=50"`
	Exterior    string `json:"ngoai_that" validate:"omitempty,max=50"`
	Interior    string `json:"noi_that" validate:"omitempty,max=50"`
	ListedPrice string `json:"gia_niem_yet" validate:"required,number"`
	BranchCode  string `json:"ma_dms" validate:"omitempty,branch_code"`
}

type UpdateVehicleStatusDTO struct {
	Status string `json:"tinh_trang" validate:"required,oneof=trong_kho da_coc da_ban"`
}
