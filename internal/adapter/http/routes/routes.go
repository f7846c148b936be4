package routes

import (
	"context"
	"log"
	"strconv"

	_ "mealweek/docs" // This will be auto-generated
	"mealweek/internal/adapter/http/handlers"
	repository2 "mealweek/internal/adapter/persistence/repository"
	"mealweek/internal/infrastructure/database"
	"mealweek/internal/usecase"

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
	database.CheckTables(context.Background(), ddb)

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	orderLogRepo := repository2.NewOrderLogDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	submissionUseCase := usecase.NewOrderSubmissionUseCase(customerRepo, orderRepo, orderLogRepo, sequenceRepo)
	guestUseCase := usecase.NewGuestOrderUseCase(customerRepo, orderRepo, orderLogRepo, sequenceRepo)

	orderHandler := handlers.NewOrderHandler(submissionUseCase)
	guestOrderHandler := handlers.NewGuestOrderHandler(guestUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, guestOrderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
