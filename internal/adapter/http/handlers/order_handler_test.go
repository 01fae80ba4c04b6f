package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gemstore/internal/adapter/http/handlers/mocks"
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/lifecycle"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var orderPlacedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:        "ord-1",
		Status:    status,
		CreatedAt: orderPlacedAt,
		Customer:  entities.Customer{Name: "Ayesha", Phone: "0300"},
		Items:     []entities.OrderLine{{ID: "ring-1", Name: "Ruby Ring", Quantity: 1, UnitPrice: 1500}},
		Subtotal:  1500,
		Total:     1750,
		Payment:   entities.CashOnDelivery(),
	}
}

func newOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc, money.NewFormatter("en"))
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/stats", h.GetStats)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.GET("/v1/orders/:id/timeline", h.GetTimeline)
	r.POST("/v1/orders/:id/advance", h.AdvanceOrder)
	r.POST("/v1/orders/:id/cancel", h.CancelOrder)
	return r
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Order{sampleOrder(entities.OrderStatusPlaced)}, nil)

	w := httptest.NewRecorder()
	newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "ord-1" || body[0]["active"] != true {
		t.Fatalf("unexpected orders: %v", body)
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(sampleOrder(entities.OrderStatusShipped), nil)

		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"formatted_total":"Rs. 1,750"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetTimeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	order := sampleOrder(entities.OrderStatusPacked)
	uc.EXPECT().Track(gomock.Any(), "ord-1").Return(usecase.OrderTracking{
		Order:    order,
		Active:   true,
		Timeline: lifecycle.TimelineOf(order),
		Steps:    lifecycle.Progress(order),
	}, nil)

	w := httptest.NewRecorder()
	newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/timeline", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Timeline map[string]time.Time `json:"timeline"`
		Steps    []struct {
			Status  string `json:"status"`
			Reached bool   `json:"reached"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body.Timeline) != 3 {
		t.Fatalf("expected 3 synthesized entries, got %d", len(body.Timeline))
	}
	if !body.Timeline["PACKED"].Equal(orderPlacedAt.Add(48 * time.Hour)) {
		t.Fatalf("expected PACKED two days after placement, got %v", body.Timeline["PACKED"])
	}
	if len(body.Steps) != 6 || !body.Steps[2].Reached || body.Steps[3].Reached {
		t.Fatalf("unexpected steps: %+v", body.Steps)
	}
}

func TestOrderHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().Stats(gomock.Any()).Return(usecase.OrderStats{
		Total:     3,
		Active:    1,
		Delivered: 1,
		Cancelled: 1,
		ByStatus:  map[entities.OrderStatus]int{entities.OrderStatusPlaced: 1},
		Revenue:   12500,
	}, nil)

	w := httptest.NewRecorder()
	newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"formatted_revenue":"Rs. 12,500"`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().Advance(gomock.Any(), "ord-1").Return(sampleOrder(entities.OrderStatusConfirmed), true, nil)

		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/advance", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"changed":true`)) || !bytes.Contains(w.Body.Bytes(), []byte(`"status":"CONFIRMED"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("advance delivered is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().Advance(gomock.Any(), "ord-1").Return(sampleOrder(entities.OrderStatusDelivered), false, nil)

		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/advance", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"changed":false`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().Cancel(gomock.Any(), "nope").Return(entities.Order{}, false, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/nope/cancel", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
