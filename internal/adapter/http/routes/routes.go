package routes

import (
	"context"
	"os"
	"strconv"

	_ "tiembanh_mousse/docs" // This will be auto-generated
	"tiembanh_mousse/internal/adapter/http/handlers"
	repository2 "tiembanh_mousse/internal/adapter/persistence/repository"
	"tiembanh_mousse/internal/infrastructure/database"
	"tiembanh_mousse/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// defaultOrdersWindowDays bounds the initial order snapshot; older orders
// stay in the store but are not loaded into the live list.
const defaultOrdersWindowDays = 45

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	streams := database.ConnectDynamoDBStreams()

	store := repository2.NewRealtimeStoreDynamoRepository(ddb, streams)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(store, ordersWindowDays())
	preOrderUseCase := usecase.NewPreOrderUseCase(store)
	customerUseCase := usecase.NewCustomerUseCase(store)
	productUseCase := usecase.NewProductUseCase(store)
	employeeUseCase := usecase.NewEmployeeUseCase(store)
	draftUseCase := usecase.NewDraftUseCase(draftRepo)
	metricsUseCase := usecase.NewMetricsUseCase(store)

	ctx := context.Background()
	subscriptions := map[string]interface{ Start(context.Context) error }{
		"orders":    orderUseCase,
		"preorders": preOrderUseCase,
		"customers": customerUseCase,
		"products":  productUseCase,
		"employees": employeeUseCase,
	}
	for name, sub := range subscriptions {
		if err := sub.Start(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to start store subscription")
		}
	}

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	preOrderHandler := handlers.NewPreOrderHandler(preOrderUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	metricsHandler := handlers.NewMetricsHandler(metricsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addPreOrderRoutes(v1, preOrderHandler)
	addCatalogRoutes(v1, customerHandler, productHandler, employeeHandler)
	addDraftRoutes(v1, draftHandler)
	addMetricsRoutes(v1, metricsHandler)
}

func ordersWindowDays() int {
	raw := os.Getenv("ORDERS_WINDOW_DAYS")
	if raw == "" {
		return defaultOrdersWindowDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		log.Warn().Str("value", raw).Msg("invalid ORDERS_WINDOW_DAYS, using default")
		return defaultOrdersWindowDays
	}
	return days
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("recovered", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
