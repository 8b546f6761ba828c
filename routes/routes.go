package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scanner/client"
	"scanner/config"
	"scanner/controller"
	"scanner/middleware"
	"scanner/service"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	cm := config.NewConfigManager(cfg.Config)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORS(cm))
	r.Use(middleware.RateLimiter(cm))

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient()

	// --- 2. Services (Dependency Injection) ---
	watchlistSvc := service.NewWatchlistService(cfg.Config.IndexDir, cfg.Config.SectorDir)
	scanSvc := service.NewScanService(yahooClient, watchlistSvc, cfg)
	exportSvc := service.NewExportService()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Scan Endpoints
		controller.NewScanController(scanSvc, watchlistSvc, exportSvc, cfg).RegisterRoutes(api)
	}

	return r
}
