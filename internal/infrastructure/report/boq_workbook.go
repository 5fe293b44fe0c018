// Package report renders stored estimates as downloadable documents.
package report

import (
	"bytes"
	"construction_estimator/internal/domain/entities"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const SheetName = "BOQ"

// BOQHeader is the header row of the bill of quantities table.
var BOQHeader = []interface{}{"material", "unit", "quantity", "rate", "total"}

// BuildBOQWorkbook renders r as an xlsx workbook with a single BOQ sheet: a
// project block, the bill of quantities and the cost summary.
func BuildBOQWorkbook(r entities.EstimateRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, err
	}

	includesFinishes := map[bool]string{true: "yes", false: "no"}[r.Spec.IncludesFinishes]
	rows := [][]interface{}{
		{"project", r.Spec.ProjectName},
		{"location", r.Spec.Location},
		{"material_quality", string(r.Spec.QualityTier)},
		{"total_area", r.Spec.Area},
		{"num_floors", r.Spec.Floors},
		{"num_rooms", r.Spec.Rooms},
		{"ceiling_height", string(r.Spec.CeilingHeight)},
		{"includes_finishes", includesFinishes},
		{"created_at", r.CreatedAt.UTC().Format(time.RFC3339)},
		{},
		BOQHeader,
	}
	for _, l := range r.BillOfQuantities {
		rows = append(rows, []interface{}{l.Material, l.Unit, l.Quantity, l.Rate, l.Total})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"material_cost", r.MaterialCost},
		[]interface{}{"labor_cost", r.LaborCost},
		[]interface{}{"equipment_cost", r.EquipmentCost},
		[]interface{}{"finishes_cost", r.FinishesCost},
		[]interface{}{"other_costs", r.OtherCosts},
		[]interface{}{"total_cost", r.TotalCost},
		[]interface{}{"estimated_duration_days", r.EstimatedDurationDays},
		[]interface{}{"accuracy_level", entities.AccuracyLabel},
	)

	for i := range rows {
		if len(rows[i]) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName is the download name of the workbook of r.
func FileName(r entities.EstimateRecord) string {
	return fmt.Sprintf("estimate_%s_%s.xlsx", r.ID, r.CreatedAt.UTC().Format("20060102_150405"))
}
