package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "github.com/rabwill/pizza-api/docs" // This will be auto-generated
	"github.com/rabwill/pizza-api/internal/adapter/http/handlers"
	repository2 "github.com/rabwill/pizza-api/internal/adapter/persistence/repository"
	"github.com/rabwill/pizza-api/internal/infrastructure/database"
	"github.com/rabwill/pizza-api/internal/infrastructure/messaging"
	"github.com/rabwill/pizza-api/internal/usecase"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"
	"github.com/rabwill/pizza-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	catalogRepo, orderRepo := resolveBackend(context.Background())

	var events interfaces.IOrderEventPublisher
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		publisher, err := messaging.NewRabbitMQPublisher(url)
		if err != nil {
			log.Printf("Order event publisher not configured: %v", err)
		} else {
			events = publisher
		}
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, catalogRepo, events)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addStorefrontRoutes(api, catalogHandler, orderHandler)
}

// resolveBackend picks DynamoDB or the bundled local dataset ONCE at startup.
// Requests never fail over between backends afterwards.
func resolveBackend(ctx context.Context) (interfaces.ICatalogRepository, interfaces.IOrderRepository) {
	pizzas, toppings, err := repository2.LoadSeedCatalog()
	if err != nil {
		log.Fatalf("Failed to load bundled catalog: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	if err := database.Ping(ctx, ddb); err != nil {
		log.Printf("DynamoDB not reachable, using local data: %v", err)
		return repository2.NewCatalogLocalRepository(pizzas, toppings), repository2.NewOrderMemoryRepository()
	}

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	if err := catalogRepo.SeedIfEmpty(ctx, pizzas, toppings); err != nil {
		log.Printf("Catalog seed failed: %v", err)
	}
	log.Printf("Successfully connected to DynamoDB")
	return catalogRepo, repository2.NewOrderDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.NewServerMetrics("api").Middleware())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
