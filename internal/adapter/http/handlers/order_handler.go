package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/adapter/http/dto/request"
	"mealweek/internal/adapter/http/dto/response"
	"mealweek/internal/adapter/http/middleware"
	"mealweek/internal/usecase"
	"mealweek/pkg"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles authenticated weekly order submissions.

type OrderHandler struct {
	usecase usecase.IOrderSubmissionUseCase
}

func NewOrderHandler(uc usecase.IOrderSubmissionUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitOrder prices the selected meals for the authenticated customer and
// creates or amends this week's order.
//
// @Summary      Submit weekly order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload body request.OrderSubmissionRequest true "Selected meals"
// @Success      200 {object} response.OrderSubmissionResponse
// @Success      201 {object} response.OrderSubmissionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /orders/submit [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	if customerID == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing customer identity", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.OrderSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cart, err := payload.ToCartItems()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_ORDER_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), customerID, cart)
	if err != nil {
		log.Printf("[order][handler] submit failed customer_id=%s err=%v", customerID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	message := "Order updated successfully"
	if res.Created {
		status = http.StatusCreated
		message = "Order created successfully"
	}
	c.JSON(status, response.OrderSubmissionResponse{
		Message: message,
		Order:   response.FromOrder(res.Order),
	})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainErrorSimple("ORDER_LOCKED", "Order can no longer be modified", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
