package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/adapter/http/dto/request"
	"mealweek/internal/adapter/http/dto/response"
	"mealweek/internal/usecase"
	"mealweek/pkg"
)

// GuestOrderHandler handles unauthenticated guest checkout submissions.

type GuestOrderHandler struct {
	usecase usecase.IGuestOrderUseCase
}

func NewGuestOrderHandler(uc usecase.IGuestOrderUseCase) *GuestOrderHandler {
	return &GuestOrderHandler{usecase: uc}
}

// SubmitGuestOrder resolves or creates the customer from the supplied email
// and submits the order through the guest pricing path.
//
// @Summary      Submit guest order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload body request.GuestOrderRequest true "Guest checkout"
// @Success      200 {object} response.OrderSubmissionResponse
// @Success      201 {object} response.OrderSubmissionResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /orders/guest [post]
func (h *GuestOrderHandler) SubmitGuestOrder(c *gin.Context) {
	var payload request.GuestOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainError("INVALID_GUEST_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cart, err := payload.ToCartItems()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_GUEST_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	info := usecase.GuestInfo{
		FirstName: payload.CustomerInfo.FirstName,
		LastName:  payload.CustomerInfo.LastName,
		Email:     payload.CustomerInfo.Email,
		Phone:     payload.CustomerInfo.Phone,
		Allergies: payload.CustomerInfo.Allergies,
	}

	res, err := h.usecase.Submit(c.Request.Context(), info, payload.ResolveTier(), cart)
	if err != nil {
		log.Printf("[order][handler] guest submit failed email=%s err=%v", info.Email, err)
		appErr := mapGuestOrderError(err)
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
		Message:    message,
		CustomerID: res.Customer.ID,
		Order:      response.FromOrder(res.Order),
	})
}

func mapGuestOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingGuestField),
		errors.Is(err, usecase.ErrMissingTier),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainErrorSimple("ORDER_LOCKED", "Order can no longer be modified", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
