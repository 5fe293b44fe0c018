package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"construction_estimator/internal/adapter/http/handlers/mocks"
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockIAdminUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	g := r.Group("/v1/admin")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/estimates", h.ListEstimates)
	g.GET("/estimates/:id", h.GetEstimate)
	g.DELETE("/estimates/:id", h.DeleteEstimate)
	return r, uc
}

func TestAdminHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.DashboardSummary{
			TotalEstimates: 2, TotalCost: 5171040, AverageCost: 2585520, ActiveUsers: 1,
			TotalCities: 3, TotalMaterials: 7, RecentEstimates: []entities.EstimateRecord{storedRecord()},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/admin/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_estimates"] != float64(2) || body["total_cost_sum"] != float64(5171040) || body["total_materials"] != float64(7) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if len(body["recent_estimates"].([]any)) != 1 {
			t.Fatalf("unexpected recent estimates %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.DashboardSummary{}, errors.New("db"))

		if w := serve(r, http.MethodGet, "/v1/admin/dashboard", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAdminHandler_Estimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().ListEstimates(gomock.Any(), 3, 0).Return(entities.EstimatePage{Total: 41, Page: 3, PerPage: 20}, nil)

		w := serve(r, http.MethodGet, "/v1/admin/estimates?page=3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["pages"] != float64(3) || body["current_page"] != float64(3) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("get any owner", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().GetEstimate(gomock.Any(), "est-1").Return(storedRecord(), nil)

		w := serve(r, http.MethodGet, "/v1/admin/estimates/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["user_id"] != float64(42) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().DeleteEstimate(gomock.Any(), "est-9").Return(usecase.ErrEstimateNotFound)

		if w := serve(r, http.MethodDelete, "/v1/admin/estimates/est-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().DeleteEstimate(gomock.Any(), "est-1").Return(nil)

		if w := serve(r, http.MethodDelete, "/v1/admin/estimates/est-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
