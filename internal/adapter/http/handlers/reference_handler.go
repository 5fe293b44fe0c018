package handlers

import (
	request "construction_estimator/internal/adapter/http/dto/request"
	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the city and material rate tables. Listing is
// public; the write endpoints are mounted under the admin group.
type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// ListCities godoc
// @Summary  List city rates
// @Tags     reference
// @Produce  json
// @Success  200  {object}  response.CityListResponse
// @Router   /estimates/cities [get]
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	cities, err := h.usecase.ListCities(c.Request.Context())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCities(cities))
}

// ListMaterials godoc
// @Summary  List material rates
// @Tags     reference
// @Produce  json
// @Success  200  {object}  response.MaterialListResponse
// @Router   /estimates/materials [get]
func (h *ReferenceHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// CreateCity godoc
// @Summary   Create a city
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     body  body      request.CityRequest  true  "City"
// @Success   201   {object}  entities.CityRate
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/cities [post]
func (h *ReferenceHandler) CreateCity(c *gin.Context) {
	var payload request.CityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	city, err := h.usecase.CreateCity(c.Request.Context(), payload.ToUpdate())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusCreated, city)
}

// UpdateCity godoc
// @Summary   Update a city; omitted fields are kept
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     id    path      string               true  "City id"
// @Param     body  body      request.CityRequest  true  "Fields to change"
// @Success   200   {object}  entities.CityRate
// @Failure   404   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/cities/{id} [put]
func (h *ReferenceHandler) UpdateCity(c *gin.Context) {
	var payload request.CityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	city, err := h.usecase.UpdateCity(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusOK, city)
}

// DeleteCity godoc
// @Summary   Delete a city
// @Tags      admin
// @Param     id   path  string  true  "City id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/cities/{id} [delete]
func (h *ReferenceHandler) DeleteCity(c *gin.Context) {
	if err := h.usecase.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateMaterial godoc
// @Summary   Create a material
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     body  body      request.MaterialRequest  true  "Material"
// @Success   201   {object}  entities.MaterialRate
// @Failure   400   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/materials [post]
func (h *ReferenceHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	material, err := h.usecase.CreateMaterial(c.Request.Context(), payload.ToUpdate())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusCreated, material)
}

// UpdateMaterial godoc
// @Summary   Update a material; omitted fields are kept
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     id    path      string                   true  "Material id"
// @Param     body  body      request.MaterialRequest  true  "Fields to change"
// @Success   200   {object}  entities.MaterialRate
// @Failure   404   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/materials/{id} [put]
func (h *ReferenceHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	material, err := h.usecase.UpdateMaterial(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterial godoc
// @Summary   Delete a material
// @Tags      admin
// @Param     id   path  string  true  "Material id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/materials/{id} [delete]
func (h *ReferenceHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapReferenceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
