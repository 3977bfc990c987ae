package vso

import "context"

// CounterStore - kho đếm số thứ tự theo key "{maDms}-{YY}-{MM}".
// Bản production là bảng Postgres vso_counters (xem
// internal/repositories/counter-repository.go); test dùng bản in-memory.
type CounterStore interface {
	// Get đọc giá trị hiện tại. ok=false khi key chưa tồn tại.
	Get(ctx context.Context, key string) (value int64, ok bool, err error)

	// TransactionalIncrement tăng counter lên 1 một cách nguyên tử và
	// trả về giá trị sau khi tăng. Các lời gọi trên cùng một key phải
	// được serialize; khác key thì độc lập hoàn toàn.
	TransactionalIncrement(ctx context.Context, key string) (int64, error)
}
