package routes

import (
	"fmt"
	"log"

	_ "payflux/docs" // generated swagger definitions
	"payflux/internal/adapter/http/handlers"
	"payflux/internal/adapter/http/middleware"
	"payflux/internal/adapter/persistence/repository"
	"payflux/internal/config"
	"payflux/internal/infrastructure/database"
	"payflux/internal/infrastructure/gateways"
	"payflux/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the full service and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB(cfg.Dynamo)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Dynamo.PaymentsTable)
	gateway := gateways.NewMockGateway(nil)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, gateway, cfg.Routing, nil)

	router := SetupRouter(cfg, paymentUseCase)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// SetupRouter builds the gin engine with all middleware and routes attached.
func SetupRouter(cfg *config.Config, uc usecase.IPaymentUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "PayFlux backend is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	paymentHandler := handlers.NewPaymentHandler(uc)

	api := router.Group("/api")
	api.Use(middleware.APIKey(cfg.Auth.APIKey))
	addPaymentRoutes(api, paymentHandler)

	return router
}
