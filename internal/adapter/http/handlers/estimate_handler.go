package handlers

import (
	request "construction_estimator/internal/adapter/http/dto/request"
	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/adapter/http/middleware"
	"construction_estimator/internal/infrastructure/report"
	"construction_estimator/internal/usecase"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EstimateHandler serves the authenticated user's estimate endpoints.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate a cost estimate
// @Description  Prices the project and stores it in the caller's history.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculateEstimateRequest  true  "Project parameters"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimates/calculate [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	var payload request.CalculateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.WarnContext(c.Request.Context(), "[estimate][handler] invalid payload", "user_id", userID, "err", err)
		writeError(c, errInvalidRequest)
		return
	}
	spec, err := payload.ToProjectSpec()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	record, err := h.usecase.CalculateEstimate(c.Request.Context(), userID, spec)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(record))
}

// History godoc
// @Summary   List the caller's estimates, newest first
// @Tags      estimates
// @Produce   json
// @Param     page      query     int  false  "Page (1-based)"
// @Param     per_page  query     int  false  "Page size (default 10)"
// @Success   200       {object}  response.EstimatePageResponse
// @Failure   401       {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates/history [get]
func (h *EstimateHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	page, perPage := pageParams(c)
	result, err := h.usecase.ListHistory(c.Request.Context(), userID, page, perPage)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatePage(result))
}

// GetHistoryItem godoc
// @Summary   Get one of the caller's estimates
// @Tags      estimates
// @Produce   json
// @Param     id   path      string  true  "Estimate id"
// @Success   200  {object}  response.EstimateRecordResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates/history/{id} [get]
func (h *EstimateHandler) GetHistoryItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	record, err := h.usecase.GetForUser(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateRecord(record))
}

// DeleteHistoryItem godoc
// @Summary   Delete one of the caller's estimates
// @Tags      estimates
// @Param     id   path  string  true  "Estimate id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates/history/{id} [delete]
func (h *EstimateHandler) DeleteHistoryItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	if err := h.usecase.DeleteForUser(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadReport godoc
// @Summary   Download the bill of quantities as an XLSX workbook
// @Tags      estimates
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param     id   path  string  true  "Estimate id"
// @Success   200  {file}  file
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates/history/{id}/report [get]
func (h *EstimateHandler) DownloadReport(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	record, err := h.usecase.GetForUser(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	data, err := report.BuildBOQWorkbook(record)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "[estimate][handler] report build failed", "estimate_id", record.ID, "err", err)
		writeError(c, mapEstimateError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.FileName(record)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
