package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiembanh_mousse/internal/adapter/http/handlers/mocks"
	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleDerivedOrder(id string) entities.DerivedOrder {
	return entities.DerivedOrder{
		ID: id,
		Customer: entities.CustomerInfo{
			ID:      "C1",
			Name:    "Chị Lan",
			Phone:   "0901234567",
			Address: "12 Nguyễn Huệ",
		},
		Items:    []entities.LineItem{{Name: "Mousse", Amount: 2, Price: 50000}},
		Timeline: entities.Timeline{Ordered: "09:00 14/03/2024", Received: "15:00 15/03/2024"},
		Date:     "2024-03-15",
		RawPrice: 110000,
		Price:    "110.000 ₫",
		Status:   entities.OrderStatusPending,
		TimeSlot: "15:00 - 18:00",
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes parsed criteria and sort to the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		var gotCrit usecase.Criteria
		var gotSort usecase.SortSpec
		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(crit usecase.Criteria, spec usecase.SortSpec) ([]entities.DerivedOrder, error) {
				gotCrit = crit
				gotSort = spec
				return []entities.DerivedOrder{sampleDerivedOrder("o1")}, nil
			})

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/orders?date=2024-03-15&q=lan&status=pending,completed&item=Mousse&price_min=10000&price_max=200000&pickup=true&sort=customerName&dir=desc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotCrit.Date != "2024-03-15" || gotCrit.SearchText != "lan" || !gotCrit.PickupOnly {
			t.Fatalf("unexpected criteria: %+v", gotCrit)
		}
		if len(gotCrit.Statuses) != 2 || gotCrit.Statuses[0] != entities.OrderStatusPending || gotCrit.Statuses[1] != entities.OrderStatusCompleted {
			t.Fatalf("unexpected statuses: %v", gotCrit.Statuses)
		}
		if gotCrit.PriceMin == nil || *gotCrit.PriceMin != 10000 || gotCrit.PriceMax == nil || *gotCrit.PriceMax != 200000 {
			t.Fatalf("unexpected price bounds: %+v", gotCrit)
		}
		if gotSort.Key != usecase.SortKeyCustomerName || gotSort.Direction != usecase.SortDesc {
			t.Fatalf("unexpected sort: %+v", gotSort)
		}

		var body struct {
			Orders []struct {
				ID    string `json:"id"`
				Price string `json:"price"`
			} `json:"orders"`
			Total int `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Total != 1 || body.Orders[0].ID != "o1" || body.Orders[0].Price != "110.000 ₫" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("rejects unknown status without calling the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=shipped", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("maps snapshot timeout to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrStoreLoadTimeout)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Get("o1").Return(sampleDerivedOrder("o1"), nil)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Get("missing").Return(entities.DerivedOrder{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		var gotInput usecase.OrderInput
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.OrderInput) (entities.DerivedOrder, error) {
				gotInput = in
				return sampleDerivedOrder("o-new"), nil
			})

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		payload := `{
			"customer": {"name": "Chị Lan", "phone": "0901234567", "address": "12 Nguyễn Huệ"},
			"items": [{"name": "Mousse", "amount": 2, "price": 50000}],
			"date": "2024-03-15",
			"time_slot": "15:00 - 18:00",
			"ship_fee": 20000,
			"discount": 10
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if gotInput.ID != "" || gotInput.Date != "2024-03-15" || gotInput.TimeSlot != "15:00 - 18:00" {
			t.Fatalf("unexpected input: %+v", gotInput)
		}
		if len(gotInput.Items) != 1 || gotInput.Items[0].Name != "Mousse" {
			t.Fatalf("unexpected items: %+v", gotInput.Items)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"date":"2024-03-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrderState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().UpdateState(gomock.Any(), "o1", "Hủy").Return(sampleDerivedOrder("o1"), nil)

	r := gin.New()
	r.PATCH("/v1/orders/:id/state", h.UpdateOrderState)

	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/state", bytes.NewBufferString(`{"state":"Hủy"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unconfirmed delete is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "o1", false).Return(usecase.ErrDeleteNotConfirmed)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/o1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirmed delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "o1", true).Return(nil)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/o1?confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Aggregations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("daily counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().CountsByDate(gomock.Any()).Return(map[string]int{"2024-03-15": 3}, nil)

		r := gin.New()
		r.GET("/v1/orders/aggregations/daily-counts", h.DailyCounts)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/aggregations/daily-counts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Counts map[string]int `json:"counts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Counts["2024-03-15"] != 3 {
			t.Fatalf("unexpected counts: %v", body.Counts)
		}
	})

	t.Run("shift breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Shifts(gomock.Any()).Return(usecase.ShiftReport{
			Morning: usecase.ShiftBucket{Count: 2, CakeQuantities: map[string]float64{"Mousse": 3}},
		}, nil)

		r := gin.New()
		r.GET("/v1/orders/aggregations/shifts", h.ShiftBreakdown)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/aggregations/shifts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Morning struct {
				Count          int                `json:"count"`
				CakeQuantities map[string]float64 `json:"cake_quantities"`
			} `json:"morning"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Morning.Count != 2 || body.Morning.CakeQuantities["Mousse"] != 3 {
			t.Fatalf("unexpected morning bucket: %+v", body.Morning)
		}
	})
}
