package routes

import (
	"log"
	"os"
	"strconv"

	_ "atelier_crm/docs" // swag-generated docs registration
	"atelier_crm/internal/adapter/http/handlers"
	repository2 "atelier_crm/internal/adapter/persistence/repository"
	"atelier_crm/internal/infrastructure/database"
	"atelier_crm/internal/infrastructure/feed"
	"atelier_crm/internal/infrastructure/notify"
	"atelier_crm/internal/infrastructure/payments"
	"atelier_crm/internal/usecase"
	"atelier_crm/internal/usecase/interfaces"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	stageRepo := repository2.NewStageHistoryDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)
	notifRepo := repository2.NewNotificationDynamoRepository(ddb)

	broker := feed.NewBroker()
	notifier := notify.NewWebhookNotifier(os.Getenv("NOTIFY_WEBHOOK_URL"))

	engine := usecase.NewTransitionUseCase(projectRepo, quoteRepo, stageRepo, auditRepo, notifRepo, notifier, broker)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, projectRepo, engine, broker)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, stageRepo, auditRepo, broker)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	settlementUseCase := usecase.NewSettlementUseCase(paymentGateway, quoteUseCase)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	feedHandler := handlers.NewFeedHandler(broker)
	webhookHandler := handlers.NewPaymentWebhookHandler(settlementUseCase)

	// Routes publiques
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, projectHandler, quoteHandler, feedHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
