package usecase

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"log/slog"
	"strings"
)

const (
	adminDefaultPerPage = 20
	dashboardRecent     = 5
)

// DashboardSummary is the admin overview of the estimate log and reference data.
type DashboardSummary struct {
	TotalEstimates  int
	TotalCost       int64
	AverageCost     float64
	ActiveUsers     int
	TotalCities     int
	TotalMaterials  int
	RecentEstimates []entities.EstimateRecord
}

type IAdminUseCase interface {
	Dashboard(ctx context.Context) (DashboardSummary, error)
	ListEstimates(ctx context.Context, page, perPage int) (entities.EstimatePage, error)
	GetEstimate(ctx context.Context, id string) (entities.EstimateRecord, error)
	DeleteEstimate(ctx context.Context, id string) error
}

type AdminUseCase struct {
	estimates interfaces.IEstimateRepository
	cities    interfaces.ICityRepository
	materials interfaces.IMaterialRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(
	estimates interfaces.IEstimateRepository,
	cities interfaces.ICityRepository,
	materials interfaces.IMaterialRepository,
) *AdminUseCase {
	return &AdminUseCase{estimates: estimates, cities: cities, materials: materials}
}

func (u *AdminUseCase) Dashboard(ctx context.Context) (DashboardSummary, error) {
	stats, err := u.estimates.Stats(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	cities, err := u.cities.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	materials, err := u.materials.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	recent, err := u.estimates.List(ctx, entities.PageRequest{Page: 1, PerPage: dashboardRecent})
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		TotalEstimates:  stats.TotalEstimates,
		TotalCost:       stats.TotalCostSum,
		ActiveUsers:     stats.ActiveUsers,
		TotalCities:     len(cities),
		TotalMaterials:  len(materials),
		RecentEstimates: recent.Items,
	}
	if stats.TotalEstimates > 0 {
		summary.AverageCost = float64(stats.TotalCostSum) / float64(stats.TotalEstimates)
	}
	return summary, nil
}

func (u *AdminUseCase) ListEstimates(ctx context.Context, page, perPage int) (entities.EstimatePage, error) {
	return u.estimates.List(ctx, entities.NewPageRequest(page, perPage, adminDefaultPerPage))
}

func (u *AdminUseCase) GetEstimate(ctx context.Context, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	r, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if r.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return r, nil
}

func (u *AdminUseCase) DeleteEstimate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.estimates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	slog.InfoContext(ctx, "[admin][usecase] estimate deleted", "estimate_id", id)
	return nil
}
