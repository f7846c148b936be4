package main

import (
	_ "mealweek/docs"
	"mealweek/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Subscription Orders API
// @version         1.0
// @description     Pricing, surcharge and order-reconciliation service for recurring meal subscriptions, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
