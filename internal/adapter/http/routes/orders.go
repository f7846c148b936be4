package routes

import (
	"mealweek/internal/adapter/http/handlers"
	"mealweek/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, guestHandler *handlers.GuestOrderHandler) {
	orders := rg.Group(PathOrders)
	{
		// Guest checkout carries no identity; the customer record is
		// resolved or created from the payload email.
		orders.POST("/guest", guestHandler.SubmitGuestOrder)

		// Authenticated submissions require a customer-role bearer token.
		orders.POST("/submit",
			middleware.Auth(),
			middleware.RequireRole(middleware.RoleCustomer),
			orderHandler.SubmitOrder,
		)
	}
}
