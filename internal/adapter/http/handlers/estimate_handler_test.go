package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dekora_studio/internal/adapter/http/handlers/mocks"
	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/domain/pricing"
	"dekora_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.POST("/v1/estimates/preview", h.PreviewEstimate)
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates", h.ListEstimates)
	r.GET("/v1/estimates/:id", h.GetEstimate)
	r.PATCH("/v1/estimates/:id/approve", h.ApproveEstimate)
	r.PATCH("/v1/estimates/:id/reject", h.RejectEstimate)
	r.PATCH("/v1/estimates/:id/assignment", h.UpdateAssignment)
	r.PATCH("/v1/estimates/:id/total", h.UpdateTotal)
	r.POST("/v1/estimates/:id/document", h.GenerateDocument)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateHandler_PreviewEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates/preview", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank tenant id", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates/preview", `{"tenant_id":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().PreviewEstimate(gomock.Any(), "t1", gomock.Any()).Return(pricing.Result{
			TotalAmount: 675000,
			Breakdown: []entities.LineItem{
				{Section: entities.LineSectionRooms, Label: "Kitchen", Amount: 675000, Included: true},
			},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/preview", `{"tenant_id":"t1","configuration":{"room_ids":["kitchen"]}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["total_amount"] != float64(675000) {
			t.Fatalf("unexpected total: %v", body["total_amount"])
		}
	})

	t.Run("invalid selection maps to 400", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().PreviewEstimate(gomock.Any(), "t1", gomock.Any()).Return(pricing.Result{}, entities.ErrNegativeCarpetArea)

		w := doJSON(r, http.MethodPost, "/v1/estimates/preview", `{"tenant_id":"t1","carpet_area":-10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tenant id fails binding", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates", `{"customer":{"name":"Asha"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().SubmitEstimate(gomock.Any(), "t1", gomock.Any(), gomock.Any()).Return(entities.EstimateRecord{
			ID:          "est-1",
			TenantID:    "t1",
			TotalAmount: 675000,
			Status:      entities.EstimateStatusPending,
			CreatedAt:   time.Now().UTC(),
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates", `{"tenant_id":"t1","customer":{"name":"Asha","phone":"999"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "est-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().SubmitEstimate(gomock.Any(), "t1", gomock.Any(), gomock.Any()).Return(entities.EstimateRecord{}, errors.New("db"))

		w := doJSON(r, http.MethodPost, "/v1/estimates", `{"tenant_id":"t1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetAndList(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.EstimateRecord{}, usecase.ErrEstimateNotFound)

		w := doJSON(r, http.MethodGet, "/v1/estimates/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by tenant", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().ListByTenant(gomock.Any(), "t1").Return([]entities.EstimateRecord{{ID: "a"}, {ID: "b"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates?tenant_id=t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 records, got %d", len(body))
		}
	})

	t.Run("list missing tenant id", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().ListByTenant(gomock.Any(), "").Return(nil, usecase.ErrInvalidTenantID)

		w := doJSON(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_StatusTransitions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "est-1").Return(entities.EstimateRecord{ID: "est-1", Status: entities.EstimateStatusApproved}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "est-1").Return(entities.EstimateRecord{}, usecase.ErrIllegalStatusTransition)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateAssignment(t *testing.T) {
	t.Run("assign staff", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Assign(gomock.Any(), "est-1", "staff-9", "Ravi").
			Return(entities.EstimateRecord{ID: "est-1", AssignedTo: "staff-9", AssignmentStatus: entities.AssignmentStatusPending}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/assignment", `{"assigned_to":"staff-9","assigned_to_name":"Ravi"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("advance sub-state", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().UpdateAssignmentStatus(gomock.Any(), "est-1", entities.AssignmentStatusAccepted).
			Return(entities.EstimateRecord{ID: "est-1", AssignmentStatus: entities.AssignmentStatusAccepted}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/assignment", `{"status":"accepted"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("illegal sub-state maps to 409", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().UpdateAssignmentStatus(gomock.Any(), "est-1", entities.AssignmentStatusCompleted).
			Return(entities.EstimateRecord{}, usecase.ErrIllegalAssignmentTransition)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/assignment", `{"status":"completed"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateTotal(t *testing.T) {
	t.Run("missing total fails binding", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/total", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("override", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().UpdateTotal(gomock.Any(), "est-1", 450000.0).
			Return(entities.EstimateRecord{ID: "est-1", TotalAmount: 450000}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/total", `{"total_amount":450000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GenerateDocument(t *testing.T) {
	t.Run("empty body renders with placeholders", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GenerateDocument(gomock.Any(), "est-1", entities.TenantBranding{}).
			Return(entities.EstimateRecord{ID: "est-1", PDFURL: "https://docs/estimates/t1/est-1.pdf"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/document", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["pdf_generated"] != true {
			t.Fatalf("expected pdf_generated true, got %v", body["pdf_generated"])
		}
	})

	t.Run("branding overrides are forwarded", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GenerateDocument(gomock.Any(), "est-1", entities.TenantBranding{CompanyName: "Dekora Studio", CurrencySymbol: "Rs."}).
			Return(entities.EstimateRecord{ID: "est-1", PDFURL: "https://docs/estimates/t1/est-1.pdf"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/document", `{"branding":{"company_name":"Dekora Studio","currency_symbol":"Rs."}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
