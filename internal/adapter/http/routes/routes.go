package routes

import (
	"os"
	"strconv"
	"time"

	_ "dekora_studio/docs" // swag-generated registration
	"dekora_studio/internal/adapter/http/handlers"
	"dekora_studio/internal/adapter/persistence/cache"
	repository2 "dekora_studio/internal/adapter/persistence/repository"
	"dekora_studio/internal/infrastructure/database"
	"dekora_studio/internal/infrastructure/documents"
	"dekora_studio/internal/infrastructure/storage"
	"dekora_studio/internal/monitoring"
	"dekora_studio/internal/usecase"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const pricingConfigCacheTTL = 5 * time.Minute

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	monitoring.InitMetrics()
	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)

	var configRepo interfaces.IPricingConfigRepository = repository2.NewPricingConfigDynamoRepository(ddb)
	if rdb := database.ConnectRedis(); rdb != nil {
		log.Info().Str("addr", os.Getenv("REDIS_ADDR")).Msg("pricing config cache enabled")
		configRepo = cache.NewPricingConfigCache(configRepo, rdb, pricingConfigCacheTTL)
	}

	configUseCase := usecase.NewPricingConfigUseCase(configRepo)
	estimateUseCase := usecase.NewEstimateUseCase(
		estimateRepo,
		configUseCase,
		documents.NewPDFRenderer(),
		storage.ConnectS3DocumentStore(),
	)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	configHandler := handlers.NewPricingConfigHandler(configUseCase)

	addPingRoutes(router.Group("/"))

	v1 := router.Group("/v1")
	addEstimateRoutes(v1, estimateHandler, configHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
