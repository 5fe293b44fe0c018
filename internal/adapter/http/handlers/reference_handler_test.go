package handlers

import (
	"context"
	"net/http"
	"testing"

	"construction_estimator/internal/adapter/http/handlers/mocks"
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReferenceRouter(t *testing.T) (*gin.Engine, *mocks.MockIReferenceUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReferenceUseCase(ctrl)
	h := NewReferenceHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/cities", h.ListCities)
	r.GET("/v1/estimates/materials", h.ListMaterials)
	admin := r.Group("/v1/admin")
	admin.POST("/cities", h.CreateCity)
	admin.PUT("/cities/:id", h.UpdateCity)
	admin.DELETE("/cities/:id", h.DeleteCity)
	admin.POST("/materials", h.CreateMaterial)
	admin.PUT("/materials/:id", h.UpdateMaterial)
	admin.DELETE("/materials/:id", h.DeleteMaterial)
	return r, uc
}

func TestReferenceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cities", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().ListCities(gomock.Any()).Return([]entities.CityRate{{ID: "c-1", Name: "Karachi", Code: "KHI", LaborRatePerArea: 550}}, nil)

		w := serve(r, http.MethodGet, "/v1/estimates/cities", "")
		want := `{"cities":[{"id":"c-1","name":"Karachi","code":"KHI","labor_rate_per_sqft":550,"material_base_rate":0,"equipment_rate":0}]}`
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty materials", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().ListMaterials(gomock.Any()).Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/estimates/materials", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"materials":[]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReferenceHandler_Cities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().CreateCity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.CityUpdate) (entities.CityRate, error) {
				if in.Name == nil || *in.Name != "Lahore" || in.LaborRatePerArea == nil || *in.LaborRatePerArea != 500 {
					t.Fatalf("unexpected update %+v", in)
				}
				return in.Apply(entities.CityRate{ID: "c-4"}), nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/admin/cities", `{"name":"Lahore","code":"LHE","labor_rate_per_sqft":500}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().CreateCity(gomock.Any(), gomock.Any()).Return(entities.CityRate{}, usecase.ErrCityAlreadyExists)

		w := serve(r, http.MethodPost, "/v1/admin/cities", `{"name":"Karachi","code":"KHI"}`)
		if w.Code != http.StatusConflict || errorCode(t, w) != "CITY_ALREADY_EXISTS" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create invalid", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().CreateCity(gomock.Any(), gomock.Any()).Return(entities.CityRate{}, usecase.ErrInvalidCity)

		if w := serve(r, http.MethodPost, "/v1/admin/cities", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update wrong type", func(t *testing.T) {
		r, _ := newReferenceRouter(t)
		if w := serve(r, http.MethodPut, "/v1/admin/cities/c-1", `{"labor_rate_per_sqft":"a lot"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().UpdateCity(gomock.Any(), "c-9", gomock.Any()).Return(entities.CityRate{}, usecase.ErrCityNotFound)

		w := serve(r, http.MethodPut, "/v1/admin/cities/c-9", `{"code":"X"}`)
		if w.Code != http.StatusNotFound || errorCode(t, w) != "CITY_NOT_FOUND" {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().DeleteCity(gomock.Any(), "c-1").Return(nil)

		if w := serve(r, http.MethodDelete, "/v1/admin/cities/c-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestReferenceHandler_Materials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).Return(entities.MaterialRate{ID: "m-8", Name: "Glass"}, nil)

		if w := serve(r, http.MethodPost, "/v1/admin/materials", `{"name":"Glass","category":"glass","unit":"sheet","standard_rate":900}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().UpdateMaterial(gomock.Any(), "m-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in entities.MaterialUpdate) (entities.MaterialRate, error) {
				if in.StandardRate == nil || *in.StandardRate != 1300 || in.Name != nil {
					t.Fatalf("unexpected update %+v", in)
				}
				return entities.MaterialRate{ID: "m-1", StandardRate: 1300}, nil
			},
		)

		if w := serve(r, http.MethodPut, "/v1/admin/materials/m-1", `{"standard_rate":1300}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update negative rate", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().UpdateMaterial(gomock.Any(), "m-1", gomock.Any()).Return(entities.MaterialRate{}, usecase.ErrInvalidRate)

		if w := serve(r, http.MethodPut, "/v1/admin/materials/m-1", `{"standard_rate":-1}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		r, uc := newReferenceRouter(t)
		uc.EXPECT().DeleteMaterial(gomock.Any(), "m-9").Return(usecase.ErrMaterialNotFound)

		w := serve(r, http.MethodDelete, "/v1/admin/materials/m-9", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "MATERIAL_NOT_FOUND" {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
