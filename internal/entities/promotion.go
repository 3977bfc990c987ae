package entities

// Promotion - một chương trình khuyến mãi theo dòng xe.
type Promotion struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Type: fixed (giảm thẳng tiền), percentage (giảm %), display (chỉ hiển thị).
	Type  string `json:"type"`
	Value int64  `json:"value"`

	MaxDiscount int64 `json:"max_discount"`
	MinPurchase int64 `json:"min_purchase"`

	// Models - các dòng xe được áp dụng (vd vf_3, vf_5).
	Models []string `json:"dong_xe"`
}
