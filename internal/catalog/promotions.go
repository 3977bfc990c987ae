package catalog

import "contract-system/internal/entities"

// Danh mục khuyến mãi mặc định theo dòng xe. Đây là danh sách fallback
// khi chưa có cấu hình riêng; giá trị tiền tính bằng VNĐ.
var defaultPromotions = []entities.Promotion{
	// VF 3
	{
		ID:     "promo_vf3_1",
		Name:   "Giảm trực tiếp 5.000.000 VNĐ cho VF 3",
		Type:   "fixed",
		Value:  5000000,
		Models: []string{"vf_3"},
	},
	{
		ID:     "promo_vf3_2",
		Name:   "Miễn phí sạc tới 30/06/2027 - VF 3",
		Type:   "display",
		Models: []string{"vf_3"},
	},

	// VF 5
	{
		ID:     "promo_vf5_1",
		Name:   "Giảm trực tiếp 10.000.000 VNĐ cho VF 5",
		Type:   "fixed",
		Value:  10000000,
		Models: []string{"vf_5"},
	},
	{
		ID:          "promo_vf5_2",
		Name:        "Giảm thêm 3% tối đa 15.000.000 VNĐ - VF 5",
		Type:        "percentage",
		Value:       3,
		MaxDiscount: 15000000,
		Models:      []string{"vf_5"},
	},

	// VF 6
	{
		ID:     "promo_vf6_1",
		Name:   "Giảm trực tiếp 15.000.000 VNĐ cho VF 6",
		Type:   "fixed",
		Value:  15000000,
		Models: []string{"vf_6"},
	},
	{
		ID:     "promo_vf6_2",
		Name:   "Ưu đãi bảo hiểm VF 6",
		Type:   "display",
		Models: []string{"vf_6"},
	},

	// VF 7
	{
		ID:     "promo_vf7_1",
		Name:   "Thu cũ đổi mới xe xăng VinFast: 50.000.000 vnđ - VF 7",
		Type:   "fixed",
		Value:  50000000,
		Models: []string{"vf_7"},
	},
	{
		ID:          "promo_vf7_2",
		Name:        "Giảm thêm 5% tối đa 30.000.000 VNĐ - VF 7",
		Type:        "percentage",
		Value:       5,
		MaxDiscount: 30000000,
		Models:      []string{"vf_7"},
	},

	// VF 8
	{
		ID:     "promo_vf8_1",
		Name:   "Ưu đãi đặc biệt VF 8 - 70.000.000 VNĐ",
		Type:   "fixed",
		Value:  70000000,
		Models: []string{"vf_8"},
	},

	// VF 9
	{
		ID:     "promo_vf9_1",
		Name:   "Ưu đãi cao cấp VF 9 - 100.000.000 VNĐ",
		Type:   "fixed",
		Value:  100000000,
		Models: []string{"vf_9"},
	},

	// Áp dụng cho nhiều dòng xe
	{
		ID:     "promo_multi_1",
		Name:   "Ưu đãi Lái xe Xanh (VN3) - Tất cả dòng xe",
		Type:   "fixed",
		Value:  1000000,
		Models: []string{"vf_3", "vf_5", "vf_6", "vf_7", "vf_8", "vf_9"},
	},
}

// DefaultPromotions trả về danh mục khuyến mãi theo thứ tự khai báo.
func DefaultPromotions() []entities.Promotion {
	out := make([]entities.Promotion, len(defaultPromotions))
	copy(out, defaultPromotions)
	return out
}

// FilterByModel lọc khuyến mãi theo dòng xe. Khuyến mãi không khai báo
// dòng xe nào thì áp dụng cho tất cả (tương thích dữ liệu cũ).
func FilterByModel(promotions []entities.Promotion, model string) []entities.Promotion {
	if model == "" {
		return promotions
	}

	out := make([]entities.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if len(p.Models) == 0 {
			out = append(out, p)
			continue
		}
		for _, m := range p.Models {
			if m == model {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
