package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"contract-system/internal/catalog"
	"contract-system/internal/entities"
	"contract-system/internal/repositories"
)

const promotionCacheKey = "cache:promotions"

// PromotionService trả danh mục khuyến mãi theo dòng xe, có cache Redis
// để các form báo giá không phải dựng lại danh sách mỗi request.
type PromotionService struct {
	cacheRepository repositories.CacheRepositoryInterface
	cacheTTL        time.Duration
	logger          *zap.Logger
}

func NewPromotionService(cacheRepository repositories.CacheRepositoryInterface, cacheTTL time.Duration, logger *zap.Logger) *PromotionService {
	return &PromotionService{
		cacheRepository: cacheRepository,
		cacheTTL:        cacheTTL,
		logger:          logger,
	}
}

func (s *PromotionService) GetPromotions(ctx context.Context, model string) ([]entities.Promotion, error) {
	promotions, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FilterByModel(promotions, model), nil
}

func (s *PromotionService) loadAll(ctx context.Context) ([]entities.Promotion, error) {
	if cached, err := s.cacheRepository.Get(ctx, promotionCacheKey); err == nil && cached != "" {
		var promotions []entities.Promotion
		if err := json.Unmarshal([]byte(cached), &promotions); err == nil {
			return promotions, nil
		}
		// Cache hỏng thì bỏ qua, dựng lại từ danh mục.
		s.logger.Warn("Cache khuyến mãi không đọc được, dựng lại")
	}

	promotions := catalog.DefaultPromotions()

	if raw, err := json.Marshal(promotions); err == nil {
		if err := s.cacheRepository.Set(ctx, promotionCacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("Không ghi được cache khuyến mãi", zap.Error(err))
		}
	}

	return promotions, nil
}
