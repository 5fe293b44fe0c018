package response

import (
	"construction_estimator/internal/domain/entities"
	"time"
)

// EstimateResponse is the breakdown returned by POST /estimates/calculate.
type EstimateResponse struct {
	EstimateID string `json:"estimate_id"`
	entities.CostBreakdown
}

func FromCalculation(r entities.EstimateRecord) EstimateResponse {
	b := r.Breakdown()
	if b.BillOfQuantities == nil {
		b.BillOfQuantities = []entities.BOQLine{}
	}
	return EstimateResponse{EstimateID: r.ID, CostBreakdown: b}
}

// EstimateRecordResponse is a stored estimate as listed in history and admin
// views.
type EstimateRecordResponse struct {
	ID                    string             `json:"id"`
	UserID                int64              `json:"user_id"`
	ProjectName           string             `json:"project_name"`
	TotalArea             float64            `json:"total_area"`
	Location              string             `json:"location"`
	MaterialQuality       string             `json:"material_quality"`
	NumFloors             int                `json:"num_floors"`
	NumRooms              int                `json:"num_rooms"`
	CeilingHeight         string             `json:"ceiling_height"`
	IncludesFinishes      bool               `json:"includes_finishes"`
	FinishesQuality       string             `json:"finishes_quality"`
	MaterialCost          int64              `json:"material_cost"`
	LaborCost             int64              `json:"labor_cost"`
	EquipmentCost         int64              `json:"equipment_cost"`
	FinishesCost          int64              `json:"finishes_cost"`
	OtherCosts            int64              `json:"other_costs"`
	TotalCost             int64              `json:"total_cost"`
	EstimatedDurationDays int64              `json:"estimated_duration_days"`
	MaterialBOQ           []entities.BOQLine `json:"material_boq"`
	AccuracyLevel         string             `json:"accuracy_level"`
	CreatedAt             time.Time          `json:"created_at"`
}

func FromEstimateRecord(r entities.EstimateRecord) EstimateRecordResponse {
	boq := r.BillOfQuantities
	if boq == nil {
		boq = []entities.BOQLine{}
	}
	return EstimateRecordResponse{
		ID:                    r.ID,
		UserID:                r.UserID,
		ProjectName:           r.Spec.ProjectName,
		TotalArea:             r.Spec.Area,
		Location:              r.Spec.Location,
		MaterialQuality:       string(r.Spec.QualityTier),
		NumFloors:             r.Spec.Floors,
		NumRooms:              r.Spec.Rooms,
		CeilingHeight:         string(r.Spec.CeilingHeight),
		IncludesFinishes:      r.Spec.IncludesFinishes,
		FinishesQuality:       string(r.Spec.FinishesQuality),
		MaterialCost:          r.MaterialCost,
		LaborCost:             r.LaborCost,
		EquipmentCost:         r.EquipmentCost,
		FinishesCost:          r.FinishesCost,
		OtherCosts:            r.OtherCosts,
		TotalCost:             r.TotalCost,
		EstimatedDurationDays: r.EstimatedDurationDays,
		MaterialBOQ:           boq,
		AccuracyLevel:         entities.AccuracyLabel,
		CreatedAt:             r.CreatedAt,
	}
}

func FromEstimateRecords(records []entities.EstimateRecord) []EstimateRecordResponse {
	out := make([]EstimateRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromEstimateRecord(r))
	}
	return out
}

// EstimatePageResponse is one page of stored estimates.
type EstimatePageResponse struct {
	Estimates   []EstimateRecordResponse `json:"estimates"`
	Total       int                      `json:"total"`
	Pages       int                      `json:"pages"`
	CurrentPage int                      `json:"current_page"`
	PerPage     int                      `json:"per_page"`
}

func FromEstimatePage(p entities.EstimatePage) EstimatePageResponse {
	return EstimatePageResponse{
		Estimates:   FromEstimateRecords(p.Items),
		Total:       p.Total,
		Pages:       p.Pages(),
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}
}
