package sqlstore

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"database/sql"
	"errors"
)

const cityColumns = `id, name, code, labor_rate_per_sqft, material_base_rate, equipment_rate`

type CityRepository struct {
	store
}

var _ interfaces.ICityRepository = (*CityRepository)(nil)

func NewCityRepository(db *sql.DB, dialect Dialect) *CityRepository {
	return &CityRepository{store{db: db, dialect: dialect}}
}

func (r *CityRepository) List(ctx context.Context) ([]entities.CityRate, error) {
	rows, err := r.query(ctx, `SELECT `+cityColumns+` FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.CityRate{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (entities.CityRate, error) {
	return r.getOne(ctx, `SELECT `+cityColumns+` FROM cities WHERE id = ?`, id)
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (entities.CityRate, error) {
	return r.getOne(ctx, `SELECT `+cityColumns+` FROM cities WHERE name = ?`, name)
}

func (r *CityRepository) getOne(ctx context.Context, query string, arg string) (entities.CityRate, error) {
	c, err := scanCity(r.queryRow(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CityRate{}, nil
	}
	if err != nil {
		return entities.CityRate{}, err
	}
	return c, nil
}

func (r *CityRepository) Create(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	_, err := r.exec(ctx,
		`INSERT INTO cities (`+cityColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Code, c.LaborRatePerArea, c.MaterialBaseRate, c.EquipmentRate,
	)
	if err != nil {
		return entities.CityRate{}, err
	}
	return c, nil
}

func (r *CityRepository) Update(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	res, err := r.exec(ctx,
		`UPDATE cities SET name = ?, code = ?, labor_rate_per_sqft = ?, material_base_rate = ?, equipment_rate = ? WHERE id = ?`,
		c.Name, c.Code, c.LaborRatePerArea, c.MaterialBaseRate, c.EquipmentRate, c.ID,
	)
	if err != nil {
		return entities.CityRate{}, err
	}
	ok, err := affected(res)
	if err != nil || !ok {
		return entities.CityRate{}, err
	}
	return c, nil
}

func (r *CityRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.exec(ctx, `DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCity(s rowScanner) (entities.CityRate, error) {
	var c entities.CityRate
	err := s.Scan(&c.ID, &c.Name, &c.Code, &c.LaborRatePerArea, &c.MaterialBaseRate, &c.EquipmentRate)
	return c, err
}
