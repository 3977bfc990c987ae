package vso

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	apperrors "contract-system/pkg/errors"
)

// Số VSO có dạng {maDms}-VSO-{YY}-{MM}-{seq4}, vd S00901-VSO-25-12-0035.
// Mỗi cặp (chi nhánh, tháng) có một counter riêng, tăng đúng 1 cho mỗi
// lần cấp thành công.

var (
	fullFormatRegex = regexp.MustCompile(`^S\d{5}-VSO-\d{2}-\d{2}-\d{4}$`)
	branchCodeRegex = regexp.MustCompile(`^(S\d{5})`)
)

// Allocation - kết quả cấp số.
// Degraded=true nghĩa là transaction thất bại sau khi hết lượt thử và
// sequence được thay bằng giá trị suy từ timestamp (epochMillis % 10000):
// mã vẫn in được nhưng không còn bảo đảm duy nhất/tăng dần.
type Allocation struct {
	Code       string
	BranchCode string
	Sequence   int64
	Degraded   bool
}

// TelemetryCounter đếm sự kiện degraded để theo dõi (Redis Incr ở production).
type TelemetryCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// DegradedMetricKey - key đếm số lần cấp mã dự phòng.
const DegradedMetricKey = "metrics:vso:degraded"

type Allocator struct {
	store         CounterStore
	telemetry     TelemetryCounter
	logger        *zap.Logger
	retryAttempts uint64
	retryBackoff  time.Duration
}

func NewAllocator(store CounterStore, telemetry TelemetryCounter, logger *zap.Logger, retryAttempts int, retryBackoff time.Duration) *Allocator {
	if retryAttempts < 1 {
		retryAttempts = 1
	}
	return &Allocator{
		store:         store,
		telemetry:     telemetry,
		logger:        logger,
		retryAttempts: uint64(retryAttempts),
		retryBackoff:  retryBackoff,
	}
}

// counterKey ghép key dạng "S00901-25-12" theo thời điểm cấp.
func counterKey(branchCode string, now time.Time) (key, year, month string) {
	year = now.Format("06")
	month = now.Format("01")
	return fmt.Sprintf("%s-%s-%s", branchCode, year, month), year, month
}

// Allocate cấp số VSO kế tiếp cho chi nhánh tại thời điểm now.
// Lỗi duy nhất có thể trả về là thiếu mã chi nhánh; mọi trục trặc với
// counter store được chuyển thành mã dự phòng (Degraded) thay vì chặn
// việc in hồ sơ.
func (a *Allocator) Allocate(ctx context.Context, branchCode string, now time.Time) (Allocation, error) {
	if branchCode == "" {
		return Allocation{}, apperrors.ErrBranchCodeRequired
	}

	key, year, month := counterKey(branchCode, now)

	var seq int64
	backoff := retry.WithMaxRetries(a.retryAttempts-1, retry.NewFibonacci(a.retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := a.store.TransactionalIncrement(ctx, key)
		if err != nil {
			return retry.RetryableError(err)
		}
		seq = v
		return nil
	})
	if err != nil {
		return a.allocateDegraded(ctx, branchCode, key, year, month, err), nil
	}

	return Allocation{
		Code:       fmt.Sprintf("%s-VSO-%s-%s-%04d", branchCode, year, month, seq),
		BranchCode: branchCode,
		Sequence:   seq,
	}, nil
}

// allocateDegraded sinh mã dự phòng từ timestamp. Hai lần gọi rơi vào
// cùng bucket millis%10000 có thể trùng mã, nên sự kiện này phải luôn
// nhìn thấy được trong log và metric.
func (a *Allocator) allocateDegraded(ctx context.Context, branchCode, key, year, month string, cause error) Allocation {
	seq := time.Now().UnixMilli() % 10000

	a.logger.Warn("Cấp số VSO rơi vào chế độ dự phòng",
		zap.String("counter_key", key),
		zap.Int64("fallback_sequence", seq),
		zap.Error(cause),
	)
	if a.telemetry != nil {
		if _, err := a.telemetry.Incr(ctx, DegradedMetricKey); err != nil {
			a.logger.Warn("Không ghi được metric degraded", zap.Error(err))
		}
	}

	return Allocation{
		Code:       fmt.Sprintf("%s-VSO-%s-%s-%04d", branchCode, year, month, seq),
		BranchCode: branchCode,
		Sequence:   seq,
		Degraded:   true,
	}
}

// PreviewNext trả về số VSO sẽ được cấp kế tiếp mà không tăng counter.
// Chỉ dùng để hiển thị: một Allocate chen ngang có thể làm số thật khác
// đi, caller không được coi số preview là đã giữ chỗ.
// Khi đọc lỗi, sequence được thay bằng "????" thay vì trả lỗi.
func (a *Allocator) PreviewNext(ctx context.Context, branchCode string, now time.Time) (string, error) {
	if branchCode == "" {
		return "", apperrors.ErrBranchCodeRequired
	}

	key, year, month := counterKey(branchCode, now)

	current, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.logger.Warn("Không đọc được counter VSO để preview",
			zap.String("counter_key", key),
			zap.Error(err),
		)
		return fmt.Sprintf("%s-VSO-%s-%s-????", branchCode, year, month), nil
	}
	if !ok {
		current = 0
	}

	return fmt.Sprintf("%s-VSO-%s-%s-%04d", branchCode, year, month, current+1), nil
}

// IsFullFormat kiểm tra chuỗi có đúng định dạng số VSO đầy đủ không.
func IsFullFormat(code string) bool {
	return fullFormatRegex.MatchString(code)
}

// ExtractBranchCode tách mã DMS (S + 5 chữ số) ở đầu chuỗi VSO.
// ok=false khi chuỗi không bắt đầu bằng mã hợp lệ.
func ExtractBranchCode(code string) (string, bool) {
	m := branchCodeRegex.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	return m[1], true
}
