package response

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase"
)

type CityListResponse struct {
	Cities []entities.CityRate `json:"cities"`
}

type MaterialListResponse struct {
	Materials []entities.MaterialRate `json:"materials"`
}

func FromCities(cities []entities.CityRate) CityListResponse {
	if cities == nil {
		cities = []entities.CityRate{}
	}
	return CityListResponse{Cities: cities}
}

func FromMaterials(materials []entities.MaterialRate) MaterialListResponse {
	if materials == nil {
		materials = []entities.MaterialRate{}
	}
	return MaterialListResponse{Materials: materials}
}

// DashboardResponse is the admin overview.
type DashboardResponse struct {
	TotalEstimates  int                      `json:"total_estimates"`
	TotalCostSum    int64                    `json:"total_cost_sum"`
	AverageCost     float64                  `json:"average_cost"`
	ActiveUsers     int                      `json:"active_users"`
	TotalCities     int                      `json:"total_cities"`
	TotalMaterials  int                      `json:"total_materials"`
	RecentEstimates []EstimateRecordResponse `json:"recent_estimates"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalEstimates:  s.TotalEstimates,
		TotalCostSum:    s.TotalCost,
		AverageCost:     s.AverageCost,
		ActiveUsers:     s.ActiveUsers,
		TotalCities:     s.TotalCities,
		TotalMaterials:  s.TotalMaterials,
		RecentEstimates: FromEstimateRecords(s.RecentEstimates),
	}
}
