package directory

import (
	"strings"

	"contract-system/internal/entities"
)

// Tên showroom trên hồ sơ được nhập rất tùy hứng: tên pháp lý đầy đủ,
// tên ngắn, mã DMS, có dấu hoặc không dấu. Resolver xử lý theo tầng:
//
//  1. chuỗi rỗng -> nil (không dùng chi nhánh mặc định; caller phải
//     phân biệt "chưa chọn showroom" với "showroom lạ")
//  2. bảng alias: so khớp chính xác các cách viết đã biết
//  3. bảng rule chứa-chuỗi, duyệt theo đúng thứ tự khai báo
//  4. fallback: tìm chuỗi con trong 3 trường tên của từng chi nhánh
//
// Thứ tự của bảng rule là bất biến nghiệp vụ, không phải chi tiết cài
// đặt: token càng đặc trưng đứng càng trên, token chung chung ("đông
// sài gòn" nằm trong tên pháp lý của cả ba chi nhánh) đứng cuối và có
// điều kiện chặn riêng. Sai thứ tự là gán sai chi nhánh pháp lý cho
// hợp đồng.

// Bảng alias: các cách viết thường gặp -> ID chi nhánh.
var aliasTable = map[string]int{
	// Thủ Đức (ID 1) - Showroom chính
	"thủ đức":                        1,
	"thu duc":                        1,
	"thuduc":                         1,
	"s00501":                         1,
	"vinfast đông sài gòn-thủ đức":   1,
	"vinfast dong sai gon-thu duc":   1,
	"đông sài gòn":                   1,
	"dong sai gon":                   1,
	"showroom thủ đức":               1,
	"sr thủ đức":                     1,
	"võ nguyên giáp":                 1,
	"an khánh":                       1,

	// Trường Chinh (ID 2)
	"trường chinh":                   2,
	"truong chinh":                   2,
	"truongchinh":                    2,
	"trường chính":                   2,
	"chi nhánh trường chinh":         2,
	"chi nhanh truong chinh":         2,
	"cn trường chinh":                2,
	"cn truong chinh":                2,
	"s00901":                         2,
	"vinfast đông sài gòn-chi nhánh trường chinh": 2,
	"vinfast dong sai gon-chi nhanh truong chinh": 2,
	"showroom trường chinh": 2,
	"sr trường chinh":       2,
	"682a trường chinh":     2,

	// Âu Cơ (ID 3)
	"âu cơ":           3,
	"au co":           3,
	"auco":            3,
	"chi nhánh âu cơ": 3,
	"chi nhanh au co": 3,
	"cn âu cơ":        3,
	"cn au co":        3,
	"s41501":          3,
	"vinfast đông sài gòn-chi nhánh âu cơ":  3,
	"vinfast đông sài gòn- chi nhánh âu cơ": 3,
	"vinfast dong sai gon-chi nhanh au co":  3,
	"showroom âu cơ": 3,
	"sr âu cơ":       3,
	"616 âu cơ":      3,
}

// containsRule - một rule chứa-chuỗi trong bảng ưu tiên.
type containsRule struct {
	name     string
	branchID int
	match    func(s string) bool
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Bảng rule, duyệt từ trên xuống, rule khớp đầu tiên thắng.
// Âu Cơ đứng trước vì "âu cơ" không xuất hiện trong tên chi nhánh khác;
// token "đông sài gòn" của Thủ Đức nằm trong tên pháp lý của cả hai chi
// nhánh còn lại nên đứng cuối và bị chặn khi chuỗi có "chi nhánh".
var containsRules = []containsRule{
	{
		name:     "Âu Cơ",
		branchID: 3,
		match: func(s string) bool {
			return containsAny(s, "âu cơ", "au co", "s41501")
		},
	},
	{
		name:     "Trường Chinh",
		branchID: 2,
		match: func(s string) bool {
			return containsAny(s, "trường chinh", "truong chinh", "s00901")
		},
	},
	{
		name:     "Thủ Đức",
		branchID: 1,
		match: func(s string) bool {
			if containsAny(s, "thủ đức", "thu duc", "s00501", "võ nguyên giáp") {
				return true
			}
			return containsAny(s, "đông sài gòn") && !strings.Contains(s, "chi nhánh")
		},
	},
}

// Resolve tìm chi nhánh theo tên showroom tự do. Trả về nil khi chuỗi
// rỗng hoặc không khớp gì; không bao giờ trả lỗi.
func Resolve(showroomName string) *entities.Branch {
	searchName := strings.ToLower(strings.TrimSpace(showroomName))
	if searchName == "" {
		return nil
	}

	if id, ok := aliasTable[searchName]; ok {
		return GetByID(id)
	}

	for _, rule := range containsRules {
		if rule.match(searchName) {
			return GetByID(rule.branchID)
		}
	}

	return resolveByName(searchName)
}

// resolveByName - fallback: tìm chuỗi con trong các trường tên, theo
// thứ tự khai báo của danh bạ.
func resolveByName(searchName string) *entities.Branch {
	for i := range branches {
		b := &branches[i]
		if strings.Contains(strings.ToLower(b.LegalName), searchName) ||
			strings.Contains(strings.ToLower(b.ShortName), searchName) ||
			strings.Contains(strings.ToLower(b.DisplayName), searchName) {
			return b
		}
	}
	return nil
}
