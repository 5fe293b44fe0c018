package handlers

import (
	"construction_estimator/internal/usecase"
	"construction_estimator/pkg"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateInput):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", "Invalid estimate input", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotPersisted):
		return pkg.NewDomainError("ESTIMATE_NOT_SAVED", "Estimate could not be saved", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapReferenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCity), errors.Is(err, usecase.ErrInvalidMaterial),
		errors.Is(err, usecase.ErrInvalidRate), errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCityNotFound):
		return pkg.NewDomainErrorSimple("CITY_NOT_FOUND", "City not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCityAlreadyExists):
		return pkg.NewDomainErrorSimple("CITY_ALREADY_EXISTS", "City already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// pageParams reads ?page and ?per_page. Unparseable values read as 0 and are
// replaced by the use case defaults.
func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("per_page"))
	return page, perPage
}
