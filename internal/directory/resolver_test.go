package directory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmptyInput(t *testing.T) {
	// Chuỗi rỗng không được rơi về chi nhánh mặc định.
	assert.Nil(t, Resolve(""))
	assert.Nil(t, Resolve("   "))
	assert.Nil(t, Resolve("\t\n"))
}

func TestResolve_AliasTable(t *testing.T) {
	cases := []struct {
		input    string
		wantCode string
	}{
		{"Chi Nhánh Trường Chinh", "S00901"},
		{"TRƯỜNG CHINH", "S00901"},
		{"truong chinh", "S00901"},
		{"s00901", "S00901"},
		{"  Thủ Đức  ", "S00501"},
		{"dong sai gon", "S00501"},
		{"võ nguyên giáp", "S00501"},
		{"CN Âu Cơ", "S41501"},
		{"616 Âu Cơ", "S41501"},
		{"S41501", "S41501"},
	}

	for _, tc := range cases {
		b := Resolve(tc.input)
		require.NotNil(t, b, "không resolve được %q", tc.input)
		assert.Equal(t, tc.wantCode, b.BranchCode, "input %q", tc.input)
	}
}

func TestResolve_SubstringPriority(t *testing.T) {
	// Tên pháp lý của Âu Cơ và Trường Chinh đều chứa "đông sài gòn";
	// chuỗi chứa token đặc trưng phải thắng token chung chung.
	b := Resolve("Khách mua tại chi nhánh Âu Cơ, VinFast Đông Sài Gòn")
	require.NotNil(t, b)
	assert.Equal(t, "S41501", b.BranchCode)

	b = Resolve("hợp đồng lập tại chi nhánh trường chinh - đông sài gòn")
	require.NotNil(t, b)
	assert.Equal(t, "S00901", b.BranchCode)

	// "đông sài gòn" đi kèm "chi nhánh" nhưng không nêu chi nhánh nào
	// -> không được đoán bừa là Thủ Đức, rơi xuống fallback theo tên.
	b = Resolve("chi nhánh đông sài gòn")
	if b != nil {
		// fallback theo tên sẽ không khớp vì không trường tên nào chứa
		// nguyên chuỗi này
		t.Fatalf("mong đợi nil, nhận %s", b.BranchCode)
	}
}

func TestResolve_GenericTokenWithoutChiNhanh(t *testing.T) {
	b := Resolve("showroom đông sài gòn khu An Khánh")
	require.NotNil(t, b)
	assert.Equal(t, "S00501", b.BranchCode)
}

func TestResolve_NameFallback(t *testing.T) {
	// Không có trong alias, không khớp rule -> tìm trong 3 trường tên.
	b := Resolve("VinFast Đông Sài Gòn-Thủ Đức")
	require.NotNil(t, b)
	assert.Equal(t, "S00501", b.BranchCode)
}

func TestResolve_Unknown(t *testing.T) {
	assert.Nil(t, Resolve("nonexistent branch xyz"))
	assert.Nil(t, Resolve("chi nhánh Cần Thơ"))
}

func TestResolve_Deterministic(t *testing.T) {
	inputs := []string{"Trường Chinh", "âu cơ", "thủ đức", "không rõ"}
	for _, in := range inputs {
		first := Resolve(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Resolve(in), "input %q", in)
		}
	}
}

// Bất biến không-nhập-nhằng của bảng rule: token của một rule không
// được xuất hiện trong tên pháp lý của chi nhánh có rule đứng trên nó.
// Token chung "đông sài gòn" được miễn vì đã có điều kiện chặn riêng.
func TestContainsRules_NonAmbiguity(t *testing.T) {
	tokens := map[int][]string{
		3: {"âu cơ", "au co", "s41501"},
		2: {"trường chinh", "truong chinh", "s00901"},
		1: {"thủ đức", "thu duc", "s00501", "võ nguyên giáp"},
	}

	for i, rule := range containsRules {
		for j := 0; j < i; j++ {
			higher := GetByID(containsRules[j].branchID)
			require.NotNil(t, higher)
			for _, tok := range tokens[rule.branchID] {
				assert.False(t,
					strings.Contains(strings.ToLower(higher.LegalName), tok),
					"token %q của rule %s nằm trong tên pháp lý của %s (ưu tiên cao hơn)",
					tok, rule.name, higher.ShortName,
				)
			}
		}
	}
}
