package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-system/internal/controllers"
	"contract-system/internal/listeners"
	"contract-system/internal/repositories"
	"contract-system/internal/services"
	"contract-system/internal/vso"
	"contract-system/pkg/config"
	"contract-system/pkg/eventbus"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: bắt đầu khởi tạo routes")

	api := e.Group("/api")

	// --- 1. HẠ TẦNG CHUNG ---
	bus := eventbus.New(logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	mirror := listeners.NewSheetMirror(cfg.Mirror.WorkbookPath, cfg.Mirror.SheetName, logger)
	mirror.Register(bus)

	// --- 2. REPOSITORIES ---
	counterStore := repositories.NewPgCounterStore(dbConn, logger)
	contractRepo := repositories.NewContractRepository(dbConn, logger)
	vehicleRepo := repositories.NewVehicleRepository(dbConn, logger)

	// --- 3. SERVICES ---
	allocator := vso.NewAllocator(counterStore, cacheRepo, logger, cfg.VSO.RetryAttempts, cfg.VSO.RetryBackoff)
	contractService := services.NewContractService(contractRepo, allocator, bus, logger)
	vehicleService := services.NewVehicleService(vehicleRepo, logger)
	promotionService := services.NewPromotionService(cacheRepo, cfg.Cache.PromotionTTL, logger)

	// --- 4. CONTROLLERS ---
	contractController := controllers.NewContractController(contractService, logger)
	branchController := controllers.NewBranchController(logger)
	vsoController := controllers.NewVSOController(allocator, logger)
	vehicleController := controllers.NewVehicleController(vehicleService, logger)
	promotionController := controllers.NewPromotionController(promotionService, logger)
	reportController := controllers.NewReportController(contractService, logger)

	// --- 5. ROUTES ---
	runContractRouter(api, contractController)
	runBranchRouter(api, branchController)
	runVSORouter(api, vsoController)
	runVehicleRouter(api, vehicleController)
	runPromotionRouter(api, promotionController)
	runReportRouter(api, reportController)

	logger.Info("InitRouter: khởi tạo routes xong")
}
