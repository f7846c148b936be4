package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"mealweek/internal/adapter/http/handlers/mocks"
	"mealweek/internal/adapter/http/middleware"
	"mealweek/internal/domain/entities"
	"mealweek/internal/usecase"
)

func submitRouter(h *OrderHandler, customerID string) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders/submit", func(c *gin.Context) {
		if customerID != "" {
			c.Set(middleware.ContextCustomerID, customerID)
		}
		c.Next()
	}, h.SubmitOrder)
	return r
}

const submitBody = `{"selectedMeals":[{"meal":{"id":"m-1","name":"Chicken Bowl","category":"entree"},"quantity":1,"weekHalf":"firstHalf"}]}`

func TestOrderHandler_SubmitOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "")

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(`{"selectedMeals":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created order returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		uc.EXPECT().Submit(gomock.Any(), "cust-1", gomock.Any()).Return(usecase.SubmissionResult{
			Order: entities.Order{
				ID:          "order-1",
				OrderNumber: "ORD-2026-000042",
				CustomerID:  "cust-1",
				Status:      entities.OrderStatusPending,
				WeekOf:      time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
				TotalAmount: 97.43,
			},
			Created: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["message"] != "Order created successfully" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		order, _ := body["order"].(map[string]any)
		if order["orderNumber"] != "ORD-2026-000042" {
			t.Fatalf("unexpected order number: %v", order["orderNumber"])
		}
		if order["weekOf"] != "2026-08-23" {
			t.Fatalf("unexpected weekOf: %v", order["weekOf"])
		}
	})

	t.Run("amended order returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		uc.EXPECT().Submit(gomock.Any(), "cust-1", gomock.Any()).Return(usecase.SubmissionResult{
			Order:   entities.Order{ID: "order-1", OrderNumber: "ORD-2026-000042"},
			Created: false,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("customer not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		uc.EXPECT().Submit(gomock.Any(), "cust-1", gomock.Any()).Return(usecase.SubmissionResult{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("locked order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		uc.EXPECT().Submit(gomock.Any(), "cust-1", gomock.Any()).Return(usecase.SubmissionResult{}, usecase.ErrOrderLocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		r := submitRouter(NewOrderHandler(uc), "cust-1")

		uc.EXPECT().Submit(gomock.Any(), "cust-1", gomock.Any()).Return(usecase.SubmissionResult{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/submit", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
