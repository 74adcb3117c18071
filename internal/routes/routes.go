package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/config"
	"fleet-system/pkg/filestorage"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api/v1")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("failed to create file storage", zap.Error(err))
	}
	txManager := repositories.NewTxManager(dbConn)

	craneRepo := repositories.NewCraneRepository(dbConn)
	truckRepo := repositories.NewTruckRepository(dbConn)
	locationRepo := repositories.NewLocationRepository(dbConn)
	customerRepo := repositories.NewCustomerRepository(dbConn)
	personRepo := repositories.NewPersonRepository(dbConn)
	projectRepo := repositories.NewProjectRepository(dbConn)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	movementRepo := repositories.NewMovementRepository(dbConn)
	configRepo := repositories.NewCraneConfigRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	movementService := services.NewMovementService(txManager, movementRepo, craneRepo, truckRepo, equipmentRepo, locationRepo, logger)
	craneService := services.NewCraneService(craneRepo, movementRepo, equipmentRepo, logger)
	truckService := services.NewTruckService(truckRepo, equipmentRepo, logger)
	locationService := services.NewLocationService(locationRepo, craneRepo, truckRepo, equipmentRepo, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	personService := services.NewPersonService(personRepo, logger)
	projectService := services.NewProjectService(txManager, projectRepo, assignmentRepo, personRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, locationRepo, truckRepo, logger)
	configService := services.NewCraneConfigService(txManager, configRepo, equipmentRepo, projectRepo, craneRepo, fileStorage, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.OverviewCacheTTL, logger)
	reportService := services.NewReportService(craneRepo, truckRepo, logger)
	craneImporter := services.NewCraneImporter(craneRepo, logger)

	craneController := controllers.NewCraneController(craneService, movementService, craneImporter, logger)
	truckController := controllers.NewTruckController(truckService, movementService, logger)
	locationController := controllers.NewLocationController(locationService, logger)
	customerController := controllers.NewCustomerController(customerService, projectService, logger)
	personController := controllers.NewPersonController(personService, logger)
	projectController := controllers.NewProjectController(projectService, configService, logger)
	movementController := controllers.NewMovementController(movementService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, movementService, logger)
	configController := controllers.NewCraneConfigController(configService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	runCraneRouter(api, craneController)
	runTruckRouter(api, truckController)
	runLocationRouter(api, locationController)
	runCustomerRouter(api, customerController)
	runPersonRouter(api, personController)
	runProjectRouter(api, projectController)
	runMovementRouter(api, movementController)
	runEquipmentRouter(api, equipmentController)
	runCraneConfigRouter(api, configController)
	runDashboardRouter(api, dashboardController)
	runReportRouter(api, reportController)

	logger.Info("routes registered")
}
