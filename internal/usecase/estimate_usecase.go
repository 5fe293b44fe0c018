package usecase

import (
	"construction_estimator/internal/domain/costing"
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrEstimateNotPersisted = errors.New("estimate could not be saved")
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidUserID        = errors.New("invalid user id")
)

// IEstimateUseCase exposes the user-facing estimate operations:
//   - POST /estimates/calculate => CalculateEstimate()
//   - GET /estimates/history => ListHistory()
//   - GET|DELETE /estimates/history/{id} => GetForUser() / DeleteForUser()

type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, userID int64, spec entities.ProjectSpec) (entities.EstimateRecord, error)
	ListHistory(ctx context.Context, userID int64, page, perPage int) (entities.EstimatePage, error)
	GetForUser(ctx context.Context, userID int64, id string) (entities.EstimateRecord, error)
	DeleteForUser(ctx context.Context, userID int64, id string) error
}

type EstimateUseCase struct {
	estimates   interfaces.IEstimateRepository
	cities      interfaces.ICityRepository
	materials   interfaces.IMaterialRepository
	metrics     interfaces.IEstimateMetrics
	defaultCity string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

type EstimateOption func(*EstimateUseCase)

// WithDefaultCity sets the city used when the requested location is unknown.
func WithDefaultCity(name string) EstimateOption {
	return func(u *EstimateUseCase) {
		if name = strings.TrimSpace(name); name != "" {
			u.defaultCity = name
		}
	}
}

func WithMetrics(m interfaces.IEstimateMetrics) EstimateOption {
	return func(u *EstimateUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func NewEstimateUseCase(
	estimates interfaces.IEstimateRepository,
	cities interfaces.ICityRepository,
	materials interfaces.IMaterialRepository,
	opts ...EstimateOption,
) *EstimateUseCase {
	u := &EstimateUseCase{
		estimates:   estimates,
		cities:      cities,
		materials:   materials,
		metrics:     noopMetrics{},
		defaultCity: entities.DefaultLocation,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CalculateEstimate costs spec against the current reference rates and stores
// the result in the user's history. No breakdown is returned unless the record
// was written.
func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, userID int64, spec entities.ProjectSpec) (entities.EstimateRecord, error) {
	if userID <= 0 {
		return entities.EstimateRecord{}, ErrInvalidUserID
	}
	spec = spec.Normalize()
	if err := spec.Validate(); err != nil {
		return entities.EstimateRecord{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, err)
	}

	slog.InfoContext(ctx, "[estimate][usecase] calculate start",
		"user_id", userID, "location", spec.Location, "quality", spec.QualityTier, "area", spec.Area, "floors", spec.Floors)

	city, err := u.resolveCity(ctx, spec.Location)
	if err != nil {
		slog.ErrorContext(ctx, "[estimate][usecase] city lookup failed", "location", spec.Location, "err", err)
		return entities.EstimateRecord{}, err
	}

	// One snapshot of the material table per calculation.
	materials, err := u.materials.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "[estimate][usecase] material lookup failed", "err", err)
		return entities.EstimateRecord{}, err
	}

	breakdown := costing.Compute(spec, city, costing.IndexMaterials(materials))
	record := entities.NewEstimateRecord(uuid.NewString(), userID, spec, breakdown, time.Now().UTC())

	saved, err := u.estimates.Create(ctx, record)
	if err != nil {
		u.metrics.PersistFailure()
		slog.ErrorContext(ctx, "[estimate][usecase] persist failed", "estimate_id", record.ID, "user_id", userID, "err", err)
		return entities.EstimateRecord{}, fmt.Errorf("%w: %w", ErrEstimateNotPersisted, err)
	}

	u.metrics.EstimateCalculated(qualityLabel(spec.QualityTier))
	slog.InfoContext(ctx, "[estimate][usecase] calculate success",
		"estimate_id", saved.ID, "user_id", userID, "total_cost", saved.TotalCost)
	return saved, nil
}

// resolveCity looks the location up by exact name, then falls back to the
// default city, then to a zero-rate city named after the default.
func (u *EstimateUseCase) resolveCity(ctx context.Context, location string) (entities.CityRate, error) {
	city, err := u.cities.GetByName(ctx, location)
	if err != nil {
		return entities.CityRate{}, err
	}
	if city.ID != "" {
		return city, nil
	}

	u.metrics.CityFallback()
	slog.InfoContext(ctx, "[estimate][usecase] unknown location, using default city", "location", location, "default_city", u.defaultCity)

	if location != u.defaultCity {
		city, err = u.cities.GetByName(ctx, u.defaultCity)
		if err != nil {
			return entities.CityRate{}, err
		}
		if city.ID != "" {
			return city, nil
		}
	}

	slog.WarnContext(ctx, "[estimate][usecase] default city missing, labor priced at zero", "default_city", u.defaultCity)
	return entities.CityRate{Name: u.defaultCity}, nil
}

func (u *EstimateUseCase) ListHistory(ctx context.Context, userID int64, page, perPage int) (entities.EstimatePage, error) {
	if userID <= 0 {
		return entities.EstimatePage{}, ErrInvalidUserID
	}
	return u.estimates.ListByUserID(ctx, userID, entities.NewPageRequest(page, perPage, entities.DefaultPerPage))
}

// GetForUser returns the record only if userID owns it; records of other users
// are reported as not found.
func (u *EstimateUseCase) GetForUser(ctx context.Context, userID int64, id string) (entities.EstimateRecord, error) {
	if userID <= 0 {
		return entities.EstimateRecord{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	r, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if r.ID == "" || r.UserID != userID {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return r, nil
}

func (u *EstimateUseCase) DeleteForUser(ctx context.Context, userID int64, id string) error {
	r, err := u.GetForUser(ctx, userID, id)
	if err != nil {
		return err
	}

	deleted, err := u.estimates.Delete(ctx, r.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	slog.InfoContext(ctx, "[estimate][usecase] deleted", "estimate_id", r.ID, "user_id", userID)
	return nil
}

func qualityLabel(t entities.QualityTier) string {
	if t.Known() {
		return string(t)
	}
	return "other"
}

type noopMetrics struct{}

func (noopMetrics) EstimateCalculated(string) {}
func (noopMetrics) CityFallback() {}
func (noopMetrics) PersistFailure() {}
