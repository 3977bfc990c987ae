package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contract-system/internal/dto"
	"contract-system/internal/entities"
	"contract-system/internal/events"
	"contract-system/internal/vso"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/eventbus"
	"contract-system/pkg/types"
)

// --- Fakes ---

type fakeContractRepo struct {
	mu        sync.Mutex
	contracts map[uint64]entities.Contract
	nextID    uint64
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[uint64]entities.Contract), nextID: 1}
}

func (r *fakeContractRepo) GetContracts(ctx context.Context, filter types.Filter) ([]entities.Contract, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeContractRepo) FindContract(ctx context.Context, id uint64) (*entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeContractRepo) FindByVSONumber(ctx context.Context, vsoNumber string) (*entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contracts {
		if c.VSONumber == vsoNumber {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeContractRepo) CreateContract(ctx context.Context, contract entities.Contract) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	contract.ID = id
	contract.CreatedAt = time.Now()
	contract.UpdatedAt = contract.CreatedAt
	r.contracts[id] = contract
	return id, nil
}

func (r *fakeContractRepo) UpdateContract(ctx context.Context, id uint64, contract entities.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.contracts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	contract.ID = id
	contract.CreatedAt = current.CreatedAt
	contract.UpdatedAt = time.Now()
	r.contracts[id] = contract
	return nil
}

func (r *fakeContractRepo) DeleteContract(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.contracts, id)
	return nil
}

type fakeCounterStore struct {
	mu       sync.Mutex
	counters map[string]int64
	failIncr bool
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counters: make(map[string]int64)}
}

func (s *fakeCounterStore) Get(ctx context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.counters[key]
	return v, ok, nil
}

func (s *fakeCounterStore) TransactionalIncrement(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIncr {
		return 0, errors.New("mất kết nối DB")
	}
	s.counters[key]++
	return s.counters[key], nil
}

type fakeTelemetry struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (t *fakeTelemetry) Incr(ctx context.Context, key string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.counts == nil {
		t.counts = make(map[string]int64)
	}
	t.counts[key]++
	return t.counts[key], nil
}

func newTestService(store vso.CounterStore) (*ContractService, *fakeContractRepo, *eventbus.Bus) {
	logger := zap.NewNop()
	repo := newFakeContractRepo()
	allocator := vso.NewAllocator(store, &fakeTelemetry{}, logger, 3, time.Millisecond)
	bus := eventbus.New(logger)
	return NewContractService(repo, allocator, bus, logger), repo, bus
}

func subscribeOnce(bus *eventbus.Bus, eventName string) <-chan eventbus.Event {
	ch := make(chan eventbus.Event, 1)
	bus.Subscribe(eventName, func(ctx context.Context, e eventbus.Event) error {
		ch <- e
		return nil
	})
	return ch
}

func waitEvent(t *testing.T, ch <-chan eventbus.Event) eventbus.Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("không nhận được sự kiện")
		return nil
	}
}

func validCreateDTO() dto.CreateContractDTO {
	return dto.CreateContractDTO{
		Showroom:        "Showroom Trường Chinh",
		SalesConsultant: "Nguyễn Văn A",
		CustomerName:    "Trần Thị B",
		Phone:           "0901234567",
		Model:           "VF 8",
		ListedPrice:     "1090000000",
		ContractPrice:   "1050000000",
		Deposit:         "50000000",
		LoanAmount:      "700000000",
	}
}

// --- Tests ---

func TestCreateContract_ResolvesBranchAndAllocatesVSO(t *testing.T) {
	service, _, bus := newTestService(newFakeCounterStore())
	exported := subscribeOnce(bus, events.ContractExportedEvent)

	created, err := service.CreateContract(context.Background(), validCreateDTO())
	require.NoError(t, err)

	assert.Equal(t, "S00901", created.BranchCode)
	assert.True(t, vso.IsFullFormat(created.VSONumber), "số VSO phải đúng định dạng: %s", created.VSONumber)
	assert.Equal(t, ContractStatusNew, created.Status)
	assert.NotEmpty(t, created.DocUID)

	// phải thu = 1.050.000.000 - 50.000.000 - 700.000.000
	require.True(t, created.Receivable.Valid)
	assert.True(t, created.Receivable.Decimal.Equal(decimal.NewFromInt(300000000)),
		"phải thu sai: %s", created.Receivable.Decimal)

	e := waitEvent(t, exported)
	assert.Equal(t, created.VSONumber, e.(events.ContractExported).Contract.VSONumber)
}

func TestCreateContract_SequentialVSONumbers(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())
	ctx := context.Background()

	first, err := service.CreateContract(ctx, validCreateDTO())
	require.NoError(t, err)
	second, err := service.CreateContract(ctx, validCreateDTO())
	require.NoError(t, err)

	assert.NotEqual(t, first.VSONumber, second.VSONumber)
	assert.Equal(t, "0001", first.VSONumber[len(first.VSONumber)-4:])
	assert.Equal(t, "0002", second.VSONumber[len(second.VSONumber)-4:])
}

func TestCreateContract_UnknownShowroom(t *testing.T) {
	service, repo, _ := newTestService(newFakeCounterStore())

	in := validCreateDTO()
	in.Showroom = "showroom nào đó không tồn tại"

	_, err := service.CreateContract(context.Background(), in)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Empty(t, repo.contracts)
}

func TestCreateContract_DegradedAllocationStillSaves(t *testing.T) {
	store := newFakeCounterStore()
	store.failIncr = true
	service, _, _ := newTestService(store)

	created, err := service.CreateContract(context.Background(), validCreateDTO())
	require.NoError(t, err)
	assert.True(t, vso.IsFullFormat(created.VSONumber),
		"mã dự phòng vẫn phải in được: %s", created.VSONumber)
}

func TestCreateContract_NegativeMoneyRejected(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())

	in := validCreateDTO()
	in.Deposit = "-1000"

	_, err := service.CreateContract(context.Background(), in)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestUpdateContract_VSONumberNeverChanges(t *testing.T) {
	service, _, bus := newTestService(newFakeCounterStore())
	ctx := context.Background()

	created, err := service.CreateContract(ctx, validCreateDTO())
	require.NoError(t, err)

	updatedCh := subscribeOnce(bus, events.ContractUpdatedEvent)

	// Đổi showroom sang chi nhánh khác: mã DMS đổi, số VSO giữ nguyên.
	updated, err := service.UpdateContract(ctx, created.ID, dto.UpdateContractDTO{
		Showroom: "Showroom Âu Cơ",
		Status:   "da_coc",
	})
	require.NoError(t, err)

	assert.Equal(t, created.VSONumber, updated.VSONumber)
	assert.Equal(t, "S41501", updated.BranchCode)
	assert.Equal(t, "da_coc", updated.Status)

	e := waitEvent(t, updatedCh)
	assert.Equal(t, created.VSONumber, e.(events.ContractUpdated).Contract.VSONumber)
}

func TestUpdateContract_RecomputesReceivable(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())
	ctx := context.Background()

	created, err := service.CreateContract(ctx, validCreateDTO())
	require.NoError(t, err)

	updated, err := service.UpdateContract(ctx, created.ID, dto.UpdateContractDTO{
		Deposit: "100000000",
	})
	require.NoError(t, err)

	// 1.050.000.000 - 100.000.000 - 700.000.000
	require.True(t, updated.Receivable.Valid)
	assert.True(t, updated.Receivable.Decimal.Equal(decimal.NewFromInt(250000000)),
		"phải thu sai sau update: %s", updated.Receivable.Decimal)
}

func TestUpdateContract_NotFound(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())

	_, err := service.UpdateContract(context.Background(), 999, dto.UpdateContractDTO{CustomerName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindByVSONumber_RejectsBadFormat(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())

	_, err := service.FindByVSONumber(context.Background(), "VSO-25-12-0001")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestFindByVSONumber_Found(t *testing.T) {
	service, _, _ := newTestService(newFakeCounterStore())
	ctx := context.Background()

	created, err := service.CreateContract(ctx, validCreateDTO())
	require.NoError(t, err)

	found, err := service.FindByVSONumber(ctx, created.VSONumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
