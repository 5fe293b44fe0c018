package entities

import "time"

// AccuracyLabel is reported with every breakdown.
const AccuracyLabel = "±7–9% (material take-off based)"

// BOQLine is one row of the material bill of quantities.
//
// Rate is the per-unit display rate: bricks, sand and crush rates are quoted
// per 1000 units in the reference data and are divided down here.
type BOQLine struct {
	Material string `json:"material" dynamodbav:"material"`
	Unit     string `json:"unit" dynamodbav:"unit"`
	Quantity int64  `json:"quantity" dynamodbav:"quantity"`
	Rate     int64  `json:"rate" dynamodbav:"rate"`
	Total    int64  `json:"total" dynamodbav:"total"`
}

// CostBreakdown is the result of one costing run. All costs are rounded.
type CostBreakdown struct {
	MaterialCost          int64     `json:"material_cost"`
	LaborCost             int64     `json:"labor_cost"`
	EquipmentCost         int64     `json:"equipment_cost"`
	FinishesCost          int64     `json:"finishes_cost"`
	OtherCosts            int64     `json:"other_costs"`
	TotalCost             int64     `json:"total_cost"`
	EstimatedDurationDays int64     `json:"estimated_duration_days"`
	BillOfQuantities      []BOQLine `json:"material_boq"`
	AccuracyLabel         string    `json:"accuracy_level"`
}

// EstimateRecord is an estimate persisted under a user's history.
//
// Records are written once per successful calculation and never updated.
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id, sorted by created_at
type EstimateRecord struct {
	ID     string      `json:"id"`
	UserID int64       `json:"user_id"`
	Spec   ProjectSpec `json:"spec"`

	MaterialCost          int64     `json:"material_cost"`
	LaborCost             int64     `json:"labor_cost"`
	EquipmentCost         int64     `json:"equipment_cost"`
	FinishesCost          int64     `json:"finishes_cost"`
	OtherCosts            int64     `json:"other_costs"`
	TotalCost             int64     `json:"total_cost"`
	EstimatedDurationDays int64     `json:"estimated_duration_days"`
	BillOfQuantities      []BOQLine `json:"material_boq"`

	CreatedAt time.Time `json:"created_at"`
}

// NewEstimateRecord copies the breakdown totals into a record for userID.
func NewEstimateRecord(id string, userID int64, spec ProjectSpec, b CostBreakdown, createdAt time.Time) EstimateRecord {
	boq := make([]BOQLine, len(b.BillOfQuantities))
	copy(boq, b.BillOfQuantities)
	return EstimateRecord{
		ID:                    id,
		UserID:                userID,
		Spec:                  spec,
		MaterialCost:          b.MaterialCost,
		LaborCost:             b.LaborCost,
		EquipmentCost:         b.EquipmentCost,
		FinishesCost:          b.FinishesCost,
		OtherCosts:            b.OtherCosts,
		TotalCost:             b.TotalCost,
		EstimatedDurationDays: b.EstimatedDurationDays,
		BillOfQuantities:      boq,
		CreatedAt:             createdAt,
	}
}

// Breakdown rebuilds the cost breakdown stored in the record.
func (r EstimateRecord) Breakdown() CostBreakdown {
	return CostBreakdown{
		MaterialCost:          r.MaterialCost,
		LaborCost:             r.LaborCost,
		EquipmentCost:         r.EquipmentCost,
		FinishesCost:          r.FinishesCost,
		OtherCosts:            r.OtherCosts,
		TotalCost:             r.TotalCost,
		EstimatedDurationDays: r.EstimatedDurationDays,
		BillOfQuantities:      r.BillOfQuantities,
		AccuracyLabel:         AccuracyLabel,
	}
}

// EstimateStats aggregates the estimate log for the admin dashboard.
type EstimateStats struct {
	TotalEstimates int
	TotalCostSum   int64
	ActiveUsers    int
}
