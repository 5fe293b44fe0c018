package handlers

import (
	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin overview of the estimate log.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Dashboard godoc
// @Summary   Admin dashboard statistics
// @Tags      admin
// @Produce   json
// @Success   200  {object}  response.DashboardResponse
// @Failure   403  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}

// ListEstimates godoc
// @Summary   List every user's estimates, newest first
// @Tags      admin
// @Produce   json
// @Param     page      query     int  false  "Page (1-based)"
// @Param     per_page  query     int  false  "Page size (default 20)"
// @Success   200       {object}  response.EstimatePageResponse
// @Security  Bearer
// @Router    /admin/estimates [get]
func (h *AdminHandler) ListEstimates(c *gin.Context) {
	page, perPage := pageParams(c)
	result, err := h.usecase.ListEstimates(c.Request.Context(), page, perPage)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatePage(result))
}

// GetEstimate godoc
// @Summary   Get any estimate
// @Tags      admin
// @Produce   json
// @Param     id   path      string  true  "Estimate id"
// @Success   200  {object}  response.EstimateRecordResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/estimates/{id} [get]
func (h *AdminHandler) GetEstimate(c *gin.Context) {
	record, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateRecord(record))
}

// DeleteEstimate godoc
// @Summary   Delete any estimate
// @Tags      admin
// @Param     id   path  string  true  "Estimate id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/estimates/{id} [delete]
func (h *AdminHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteEstimate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
