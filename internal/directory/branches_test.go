package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_UniqueIDsAndCodes(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seenID := map[int]bool{}
	seenCode := map[string]bool{}
	for _, b := range all {
		assert.False(t, seenID[b.ID], "ID %d bị trùng", b.ID)
		assert.False(t, seenCode[b.BranchCode], "mã DMS %s bị trùng", b.BranchCode)
		seenID[b.ID] = true
		seenCode[b.BranchCode] = true
	}
}

func TestDirectory_GetByID(t *testing.T) {
	b := GetByID(2)
	require.NotNil(t, b)
	assert.Equal(t, "S00901", b.BranchCode)
	assert.Equal(t, "Trường Chinh", b.ShortName)

	assert.Nil(t, GetByID(99))
}

func TestDirectory_GetByCode(t *testing.T) {
	b := GetByCode("S41501")
	require.NotNil(t, b)
	assert.Equal(t, "Âu Cơ", b.ShortName)

	assert.Nil(t, GetByCode(""))
	assert.Nil(t, GetByCode("S99999"))
}

func TestDirectory_AllIsDeclarationOrderAndCopy(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"S00501", "S00901", "S41501"}, []string{all[0].BranchCode, all[1].BranchCode, all[2].BranchCode})

	// All trả về bản sao, sửa không ảnh hưởng danh bạ.
	all[0].ShortName = "sửa bậy"
	assert.Equal(t, "Thủ Đức", GetByID(1).ShortName)
}

func TestDirectory_Default(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	// Mặc định nghiệp vụ là Chi Nhánh Trường Chinh.
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, "S00901", b.BranchCode)
}
