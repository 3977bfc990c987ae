package vso

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "contract-system/pkg/errors"
)

// memStore - CounterStore trong bộ nhớ cho test, serialize bằng mutex.
type memStore struct {
	mu       sync.Mutex
	counters map[string]int64
	failIncr error
	failGet  error
}

func newMemStore() *memStore {
	return &memStore{counters: map[string]int64{}}
}

func (s *memStore) Get(ctx context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return 0, false, s.failGet
	}
	v, ok := s.counters[key]
	return v, ok, nil
}

func (s *memStore) TransactionalIncrement(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIncr != nil {
		return 0, s.failIncr
	}
	s.counters[key]++
	return s.counters[key], nil
}

type memTelemetry struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *memTelemetry) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	m.counts[key]++
	return m.counts[key], nil
}

func newTestAllocator(store CounterStore) (*Allocator, *memTelemetry) {
	tel := &memTelemetry{}
	return NewAllocator(store, tel, zap.NewNop(), 3, time.Millisecond), tel
}

var dec2025 = time.Date(2025, time.December, 1, 10, 0, 0, 0, time.UTC)

func TestAllocate_FirstOfMonth(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())

	a, err := alloc.Allocate(context.Background(), "S00901", dec2025)
	require.NoError(t, err)
	assert.Equal(t, "S00901-VSO-25-12-0001", a.Code)
	assert.False(t, a.Degraded)
	assert.EqualValues(t, 1, a.Sequence)
}

func TestAllocate_Sequential(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())
	ctx := context.Background()

	a1, err := alloc.Allocate(ctx, "S00901", dec2025)
	require.NoError(t, err)
	a2, err := alloc.Allocate(ctx, "S00901", dec2025)
	require.NoError(t, err)

	assert.Equal(t, "S00901-VSO-25-12-0001", a1.Code)
	assert.Equal(t, "S00901-VSO-25-12-0002", a2.Code)
}

func TestAllocate_EmptyBranchCode(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())

	_, err := alloc.Allocate(context.Background(), "", dec2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBranchCodeRequired)
}

func TestAllocate_KeyIsolation(t *testing.T) {
	store := newMemStore()
	alloc, _ := newTestAllocator(store)
	ctx := context.Background()

	jan2026 := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := alloc.Allocate(ctx, "S00901", dec2025)
		require.NoError(t, err)
	}
	a, err := alloc.Allocate(ctx, "S00901", jan2026)
	require.NoError(t, err)
	assert.Equal(t, "S00901-VSO-26-01-0001", a.Code, "counter tháng mới phải bắt đầu từ 1")

	b, err := alloc.Allocate(ctx, "S41501", dec2025)
	require.NoError(t, err)
	assert.Equal(t, "S41501-VSO-25-12-0001", b.Code, "counter chi nhánh khác phải độc lập")
}

func TestAllocate_ConcurrentMonotonic(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())
	ctx := context.Background()

	const n = 50
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := alloc.Allocate(ctx, "S00501", dec2025)
			assert.NoError(t, err)
			assert.False(t, a.Degraded)
			codes <- a.Code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for code := range codes {
		assert.False(t, seen[code], "mã %s bị cấp trùng", code)
		seen[code] = true
	}
	require.Len(t, seen, n)

	// Không có lỗ hổng: đủ từ 0001 đến 0050.
	for i := 1; i <= n; i++ {
		want := fmt.Sprintf("S00501-VSO-25-12-%04d", i)
		assert.True(t, seen[want], "thiếu mã %s", want)
	}
}

func TestAllocate_DegradedFallback(t *testing.T) {
	store := newMemStore()
	store.failIncr = errors.New("transaction hết lượt thử")
	alloc, tel := newTestAllocator(store)

	a, err := alloc.Allocate(context.Background(), "S00901", dec2025)
	require.NoError(t, err, "degraded không được trả lỗi cho caller")
	assert.True(t, a.Degraded)
	assert.True(t, IsFullFormat(a.Code), "mã dự phòng vẫn phải đúng định dạng: %s", a.Code)
	assert.Contains(t, a.Code, "S00901-VSO-25-12-")

	// Sự kiện degraded phải đếm được.
	assert.EqualValues(t, 1, tel.counts[DegradedMetricKey])
}

func TestAllocate_RetriesBeforeDegrading(t *testing.T) {
	store := newMemStore()
	attempts := 0
	flaky := &flakyStore{inner: store, failFirst: 2, attempts: &attempts}
	alloc, _ := newTestAllocator(flaky)

	a, err := alloc.Allocate(context.Background(), "S00901", dec2025)
	require.NoError(t, err)
	assert.False(t, a.Degraded, "phải thử lại trước khi chuyển dự phòng")
	assert.Equal(t, "S00901-VSO-25-12-0001", a.Code)
	assert.Equal(t, 3, attempts)
}

type flakyStore struct {
	inner     *memStore
	failFirst int
	attempts  *int
}

func (s *flakyStore) Get(ctx context.Context, key string) (int64, bool, error) {
	return s.inner.Get(ctx, key)
}

func (s *flakyStore) TransactionalIncrement(ctx context.Context, key string) (int64, error) {
	*s.attempts++
	if *s.attempts <= s.failFirst {
		return 0, errors.New("xung đột ghi")
	}
	return s.inner.TransactionalIncrement(ctx, key)
}

func TestPreviewNext_DoesNotIncrement(t *testing.T) {
	store := newMemStore()
	alloc, _ := newTestAllocator(store)
	ctx := context.Background()

	preview, err := alloc.PreviewNext(ctx, "S00901", dec2025)
	require.NoError(t, err)
	assert.Equal(t, "S00901-VSO-25-12-0001", preview)

	// Preview không giữ chỗ: Allocate sau đó vẫn nhận đúng 0001.
	a, err := alloc.Allocate(ctx, "S00901", dec2025)
	require.NoError(t, err)
	assert.Equal(t, "S00901-VSO-25-12-0001", a.Code)

	preview, err = alloc.PreviewNext(ctx, "S00901", dec2025)
	require.NoError(t, err)
	assert.Equal(t, "S00901-VSO-25-12-0002", preview)
}

func TestPreviewNext_ReadFailure(t *testing.T) {
	store := newMemStore()
	store.failGet = errors.New("mất kết nối")
	alloc, _ := newTestAllocator(store)

	preview, err := alloc.PreviewNext(context.Background(), "S00901", dec2025)
	require.NoError(t, err, "preview chỉ để hiển thị, không được trả lỗi đọc")
	assert.Equal(t, "S00901-VSO-25-12-????", preview)
}

func TestPreviewNext_EmptyBranchCode(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())
	_, err := alloc.PreviewNext(context.Background(), "", dec2025)
	assert.ErrorIs(t, err, apperrors.ErrBranchCodeRequired)
}

func TestIsFullFormat(t *testing.T) {
	assert.True(t, IsFullFormat("S00901-VSO-25-12-0035"))
	assert.True(t, IsFullFormat("S41501-VSO-26-01-0001"))

	assert.False(t, IsFullFormat(""))
	assert.False(t, IsFullFormat("S00901-25-12"))
	assert.False(t, IsFullFormat("S0901-VSO-25-12-0035"))
	assert.False(t, IsFullFormat("S00901-VSO-2025-12-0035"))
	assert.False(t, IsFullFormat("S00901-VSO-25-12-035"))
	assert.False(t, IsFullFormat("X00901-VSO-25-12-0035"))
	assert.False(t, IsFullFormat(" S00901-VSO-25-12-0035"))
}

func TestExtractBranchCode(t *testing.T) {
	code, ok := ExtractBranchCode("S00901-VSO-25-12-0035")
	require.True(t, ok)
	assert.Equal(t, "S00901", code)

	code, ok = ExtractBranchCode("S41501")
	require.True(t, ok)
	assert.Equal(t, "S41501", code)

	_, ok = ExtractBranchCode("")
	assert.False(t, ok)
	_, ok = ExtractBranchCode("VSO-25-12-0035")
	assert.False(t, ok)
	_, ok = ExtractBranchCode("s00901-VSO-25-12-0035")
	assert.False(t, ok)
}

func TestFormatRoundTrip(t *testing.T) {
	alloc, _ := newTestAllocator(newMemStore())

	for _, branch := range []string{"S00501", "S00901", "S41501"} {
		a, err := alloc.Allocate(context.Background(), branch, dec2025)
		require.NoError(t, err)
		assert.True(t, IsFullFormat(a.Code))
		got, ok := ExtractBranchCode(a.Code)
		require.True(t, ok)
		assert.Equal(t, branch, got)
	}
}
