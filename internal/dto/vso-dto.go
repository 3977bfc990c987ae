package dto

type VSOPreviewDTO struct {
	BranchCode string `json:"ma_dms"`
	NextCode   string `json:"next_code"`
}

type VSOAllocationDTO struct {
	Code       string `json:"code"`
	BranchCode string `json:"ma_dms"`
	Sequence   int64  `json:"sequence"`
	Degraded   bool   `json:"degraded"`
}

type VSOValidateDTO struct {
	Code       string `json:"code"`
	Valid      bool   `json:"valid"`
	BranchCode string `json:"ma_dms,omitempty"`
}
