package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/cache"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/messaging"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	technicianRepo := repository2.NewTechnicianDynamoRepository(ddb)
	partRepo := repository2.NewPartDynamoRepository(ddb)
	workServiceRepo := repository2.NewWorkServiceDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb)

	var refLoader composer.ReferenceLoader = usecase.NewReferenceSource(
		customerRepo, vehicleRepo, technicianRepo, partRepo, workServiceRepo)
	if rdb := database.ConnectRedis(); rdb != nil {
		refLoader = cache.NewCachedReferenceLoader(refLoader, rdb)
	}

	var notifier interfaces.IOrderNotifier
	if rmq := messaging.ConnectRabbitMQ(os.Getenv("RABBITMQ_URL")); rmq != nil {
		notifier = rmq
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)
	technicianUseCase := usecase.NewTechnicianUseCase(technicianRepo)
	partUseCase := usecase.NewPartUseCase(partRepo)
	workServiceUseCase := usecase.NewWorkServiceUseCase(workServiceRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(
		orderRepo, customerRepo, vehicleRepo, technicianRepo, partRepo, refLoader, notifier)
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	workServiceHandler := handlers.NewWorkServiceHandler(workServiceUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	paymentHandler := handlers.NewOrderPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, customerHandler, vehicleHandler, technicianHandler, partHandler, workServiceHandler)
	addOrderRoutes(v1, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
