package sqlstore

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const estimateColumns = `id, user_id, project_name, total_area, location, material_quality, num_floors, num_rooms,
	ceiling_height, includes_finishes, finishes_quality, material_cost, labor_cost, equipment_cost,
	finishes_cost, other_costs, total_cost, estimated_duration_days, material_boq, created_at`

// EstimateRepository stores the estimate log. created_at is kept as unix
// nanoseconds so ordering is identical across dialects.
type EstimateRepository struct {
	store
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(db *sql.DB, dialect Dialect) *EstimateRepository {
	return &EstimateRepository{store{db: db, dialect: dialect}}
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	boq, err := json.Marshal(boqOrEmpty(e.BillOfQuantities))
	if err != nil {
		return entities.EstimateRecord{}, fmt.Errorf("encode boq: %w", err)
	}

	_, err = r.exec(ctx,
		`INSERT INTO estimates (`+estimateColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Spec.ProjectName, e.Spec.Area, e.Spec.Location, string(e.Spec.QualityTier),
		e.Spec.Floors, e.Spec.Rooms, string(e.Spec.CeilingHeight), e.Spec.IncludesFinishes,
		string(e.Spec.FinishesQuality), e.MaterialCost, e.LaborCost, e.EquipmentCost, e.FinishesCost,
		e.OtherCosts, e.TotalCost, e.EstimatedDurationDays, string(boq), e.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	return e, nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	e, err := scanEstimate(r.queryRow(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.EstimateRecord{}, nil
	}
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	return e, nil
}

func (r *EstimateRepository) ListByUserID(ctx context.Context, userID int64, page entities.PageRequest) (entities.EstimatePage, error) {
	return r.list(ctx, `WHERE user_id = ?`, page, userID)
}

func (r *EstimateRepository) List(ctx context.Context, page entities.PageRequest) (entities.EstimatePage, error) {
	return r.list(ctx, ``, page)
}

func (r *EstimateRepository) list(ctx context.Context, where string, page entities.PageRequest, args ...any) (entities.EstimatePage, error) {
	out := entities.EstimatePage{Page: page.Page, PerPage: page.PerPage, Items: []entities.EstimateRecord{}}

	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM estimates `+where, args...).Scan(&out.Total); err != nil {
		return entities.EstimatePage{}, err
	}
	if out.Total == 0 || page.Offset() >= out.Total {
		return out, nil
	}

	args = append(args, page.PerPage, page.Offset())
	rows, err := r.query(ctx,
		`SELECT `+estimateColumns+` FROM estimates `+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return entities.EstimatePage{}, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return entities.EstimatePage{}, err
		}
		out.Items = append(out.Items, e)
	}
	if err := rows.Err(); err != nil {
		return entities.EstimatePage{}, err
	}
	return out, nil
}

func (r *EstimateRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.exec(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *EstimateRepository) Stats(ctx context.Context) (entities.EstimateStats, error) {
	var s entities.EstimateStats
	err := r.queryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_cost), 0), COUNT(DISTINCT user_id) FROM estimates`,
	).Scan(&s.TotalEstimates, &s.TotalCostSum, &s.ActiveUsers)
	if err != nil {
		return entities.EstimateStats{}, err
	}
	return s, nil
}

func scanEstimate(s rowScanner) (entities.EstimateRecord, error) {
	var (
		e                         entities.EstimateRecord
		quality, ceiling, finQual string
		boq                       string
		createdAt                 int64
	)
	err := s.Scan(
		&e.ID, &e.UserID, &e.Spec.ProjectName, &e.Spec.Area, &e.Spec.Location, &quality,
		&e.Spec.Floors, &e.Spec.Rooms, &ceiling, &e.Spec.IncludesFinishes, &finQual,
		&e.MaterialCost, &e.LaborCost, &e.EquipmentCost, &e.FinishesCost, &e.OtherCosts,
		&e.TotalCost, &e.EstimatedDurationDays, &boq, &createdAt,
	)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	e.Spec.QualityTier = entities.QualityTier(quality)
	e.Spec.CeilingHeight = entities.CeilingHeightBand(ceiling)
	e.Spec.FinishesQuality = entities.QualityTier(finQual)
	e.CreatedAt = time.Unix(0, createdAt).UTC()
	if err := json.Unmarshal([]byte(boq), &e.BillOfQuantities); err != nil {
		return entities.EstimateRecord{}, fmt.Errorf("decode boq of %s: %w", e.ID, err)
	}
	return e, nil
}

func boqOrEmpty(lines []entities.BOQLine) []entities.BOQLine {
	if lines == nil {
		return []entities.BOQLine{}
	}
	return lines
}
