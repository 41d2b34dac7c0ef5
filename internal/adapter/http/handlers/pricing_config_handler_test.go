package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dekora_studio/internal/adapter/http/handlers/mocks"
	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newConfigRouter(t *testing.T) (*gin.Engine, *mocks.MockIPricingConfigUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIPricingConfigUseCase(ctrl)
	h := NewPricingConfigHandler(uc)

	r := gin.New()
	r.GET("/v1/pricing-config", h.GetPricingConfig)
	r.PUT("/v1/pricing-config", h.UpdatePricingConfig)
	return r, uc
}

func TestPricingConfigHandler_GetPricingConfig(t *testing.T) {
	t.Run("missing tenant id", func(t *testing.T) {
		r, uc := newConfigRouter(t)
		uc.EXPECT().GetOrCreate(gomock.Any(), "").Return(entities.PricingConfig{}, usecase.ErrInvalidTenantID)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing-config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns the tenant config", func(t *testing.T) {
		r, uc := newConfigRouter(t)
		uc.EXPECT().GetOrCreate(gomock.Any(), "t1").Return(entities.DefaultPricingConfig("t1"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing-config?tenant_id=t1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body entities.PricingConfig
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.TenantID != "t1" || len(body.RoomPricing) == 0 {
			t.Fatalf("unexpected config: %+v", body)
		}
	})
}

func TestPricingConfigHandler_UpdatePricingConfig(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newConfigRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing-config?tenant_id=t1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative rates map to 400", func(t *testing.T) {
		r, uc := newConfigRouter(t)
		uc.EXPECT().Update(gomock.Any(), "t1", gomock.Any()).Return(entities.PricingConfig{}, usecase.ErrInvalidPricingConfig)

		payload := `{"room_pricing":[{"id":"kitchen","rate":-1,"enabled":true}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/pricing-config?tenant_id=t1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overwrites the config", func(t *testing.T) {
		r, uc := newConfigRouter(t)
		updated := entities.DefaultPricingConfig("t1")
		uc.EXPECT().Update(gomock.Any(), "t1", gomock.Any()).Return(updated, nil)

		payload, _ := json.Marshal(updated)
		req := httptest.NewRequest(http.MethodPut, "/v1/pricing-config?tenant_id=t1", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
