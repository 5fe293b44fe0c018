package sqlstore

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"database/sql"
	"errors"
)

const materialColumns = `id, name, category, unit, standard_rate, premium_rate, luxury_rate`

type MaterialRepository struct {
	store
}

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository(db *sql.DB, dialect Dialect) *MaterialRepository {
	return &MaterialRepository{store{db: db, dialect: dialect}}
}

func (r *MaterialRepository) List(ctx context.Context) ([]entities.MaterialRate, error) {
	rows, err := r.query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.MaterialRate{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (entities.MaterialRate, error) {
	m, err := scanMaterial(r.queryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.MaterialRate{}, nil
	}
	if err != nil {
		return entities.MaterialRate{}, err
	}
	return m, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	_, err := r.exec(ctx,
		`INSERT INTO materials (`+materialColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Category, m.Unit, m.StandardRate, m.PremiumRate, m.LuxuryRate,
	)
	if err != nil {
		return entities.MaterialRate{}, err
	}
	return m, nil
}

func (r *MaterialRepository) Update(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	res, err := r.exec(ctx,
		`UPDATE materials SET name = ?, category = ?, unit = ?, standard_rate = ?, premium_rate = ?, luxury_rate = ? WHERE id = ?`,
		m.Name, m.Category, m.Unit, m.StandardRate, m.PremiumRate, m.LuxuryRate, m.ID,
	)
	if err != nil {
		return entities.MaterialRate{}, err
	}
	ok, err := affected(res)
	if err != nil || !ok {
		return entities.MaterialRate{}, err
	}
	return m, nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.exec(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func scanMaterial(s rowScanner) (entities.MaterialRate, error) {
	var m entities.MaterialRate
	err := s.Scan(&m.ID, &m.Name, &m.Category, &m.Unit, &m.StandardRate, &m.PremiumRate, &m.LuxuryRate)
	return m, err
}
