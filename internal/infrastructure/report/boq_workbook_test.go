package report

import (
	"bytes"
	"testing"
	"time"

	"construction_estimator/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func sampleRecord() entities.EstimateRecord {
	spec := entities.ProjectSpec{
		ProjectName:   "House",
		Area:          1000,
		Location:      "Karachi",
		QualityTier:   entities.QualityStandard,
		Floors:        1,
		CeilingHeight: entities.CeilingHeight10,
	}
	b := entities.CostBreakdown{
		MaterialCost: 1659500, LaborCost: 550000, EquipmentCost: 99000, OtherCosts: 277020, TotalCost: 2585520,
		EstimatedDurationDays: 45,
		BillOfQuantities: []entities.BOQLine{
			{Material: "Cement", Unit: "bag", Quantity: 400, Rate: 1250, Total: 500000},
			{Material: "Steel", Unit: "kg", Quantity: 3500, Rate: 280, Total: 980000},
		},
	}
	return entities.NewEstimateRecord("est-1", 1, spec, b, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
}

func TestBuildBOQWorkbook(t *testing.T) {
	data, err := BuildBOQWorkbook(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	find := func(key string) []string {
		for _, r := range rows {
			if len(r) > 0 && r[0] == key {
				return r
			}
		}
		return nil
	}

	if r := find("project"); len(r) < 2 || r[1] != "House" {
		t.Fatalf("unexpected project row: %v", r)
	}
	if r := find("material"); len(r) != 5 || r[4] != "total" {
		t.Fatalf("unexpected boq header: %v", r)
	}
	if r := find("Cement"); len(r) != 5 || r[2] != "400" || r[4] != "500000" {
		t.Fatalf("unexpected cement row: %v", r)
	}
	if r := find("total_cost"); len(r) < 2 || r[1] != "2585520" {
		t.Fatalf("unexpected total row: %v", r)
	}
	if r := find("created_at"); len(r) < 2 || r[1] != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected created_at row: %v", r)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(sampleRecord()); got != "estimate_est-1_20240501_100000.xlsx" {
		t.Fatalf("unexpected file name %q", got)
	}
}
