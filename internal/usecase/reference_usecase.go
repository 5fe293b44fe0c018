package usecase

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrCityNotFound       = errors.New("city not found")
	ErrCityAlreadyExists  = errors.New("city already exists")
	ErrMaterialNotFound   = errors.New("material not found")
	ErrInvalidCity        = errors.New("invalid city")
	ErrInvalidMaterial    = errors.New("invalid material")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrInvalidReferenceID = errors.New("invalid reference id")
)

// IReferenceUseCase manages the city and material rate tables read by the
// costing engine. Listing is public; writes are admin-only at the HTTP layer.
type IReferenceUseCase interface {
	ListCities(ctx context.Context) ([]entities.CityRate, error)
	CreateCity(ctx context.Context, in entities.CityUpdate) (entities.CityRate, error)
	UpdateCity(ctx context.Context, id string, in entities.CityUpdate) (entities.CityRate, error)
	DeleteCity(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) ([]entities.MaterialRate, error)
	CreateMaterial(ctx context.Context, in entities.MaterialUpdate) (entities.MaterialRate, error)
	UpdateMaterial(ctx context.Context, id string, in entities.MaterialUpdate) (entities.MaterialRate, error)
	DeleteMaterial(ctx context.Context, id string) error

	SeedDefaults(ctx context.Context) error
}

type ReferenceUseCase struct {
	cities    interfaces.ICityRepository
	materials interfaces.IMaterialRepository
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(cities interfaces.ICityRepository, materials interfaces.IMaterialRepository) *ReferenceUseCase {
	return &ReferenceUseCase{cities: cities, materials: materials}
}

func (u *ReferenceUseCase) ListCities(ctx context.Context) ([]entities.CityRate, error) {
	return u.cities.List(ctx)
}

// CreateCity requires name and code. City names are unique.
func (u *ReferenceUseCase) CreateCity(ctx context.Context, in entities.CityUpdate) (entities.CityRate, error) {
	c := in.Apply(entities.CityRate{ID: uuid.NewString()})
	c.Name = strings.TrimSpace(c.Name)
	c.Code = strings.TrimSpace(c.Code)
	if err := validateCity(c); err != nil {
		return entities.CityRate{}, err
	}

	existing, err := u.cities.GetByName(ctx, c.Name)
	if err != nil {
		return entities.CityRate{}, err
	}
	if existing.ID != "" {
		return entities.CityRate{}, ErrCityAlreadyExists
	}

	created, err := u.cities.Create(ctx, c)
	if err != nil {
		return entities.CityRate{}, err
	}
	slog.InfoContext(ctx, "[reference][usecase] city created", "city_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *ReferenceUseCase) UpdateCity(ctx context.Context, id string, in entities.CityUpdate) (entities.CityRate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CityRate{}, ErrInvalidReferenceID
	}

	current, err := u.cities.GetByID(ctx, id)
	if err != nil {
		return entities.CityRate{}, err
	}
	if current.ID == "" {
		return entities.CityRate{}, ErrCityNotFound
	}

	next := in.Apply(current)
	next.Name = strings.TrimSpace(next.Name)
	next.Code = strings.TrimSpace(next.Code)
	if err := validateCity(next); err != nil {
		return entities.CityRate{}, err
	}
	if next.Name != current.Name {
		clash, err := u.cities.GetByName(ctx, next.Name)
		if err != nil {
			return entities.CityRate{}, err
		}
		if clash.ID != "" && clash.ID != id {
			return entities.CityRate{}, ErrCityAlreadyExists
		}
	}

	updated, err := u.cities.Update(ctx, next)
	if err != nil {
		return entities.CityRate{}, err
	}
	if updated.ID == "" {
		return entities.CityRate{}, ErrCityNotFound
	}
	slog.InfoContext(ctx, "[reference][usecase] city updated", "city_id", id)
	return updated, nil
}

func (u *ReferenceUseCase) DeleteCity(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidReferenceID
	}
	deleted, err := u.cities.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCityNotFound
	}
	slog.InfoContext(ctx, "[reference][usecase] city deleted", "city_id", id)
	return nil
}

func (u *ReferenceUseCase) ListMaterials(ctx context.Context) ([]entities.MaterialRate, error) {
	return u.materials.List(ctx)
}

// CreateMaterial requires name, category, unit and the standard rate. Premium
// and luxury rates default to the standard rate.
func (u *ReferenceUseCase) CreateMaterial(ctx context.Context, in entities.MaterialUpdate) (entities.MaterialRate, error) {
	if in.StandardRate == nil {
		return entities.MaterialRate{}, fmt.Errorf("%w: standard rate is required", ErrInvalidMaterial)
	}
	if in.PremiumRate == nil {
		in.PremiumRate = in.StandardRate
	}
	if in.LuxuryRate == nil {
		in.LuxuryRate = in.StandardRate
	}

	m := trimMaterial(in.Apply(entities.MaterialRate{ID: uuid.NewString()}))
	if err := validateMaterial(m); err != nil {
		return entities.MaterialRate{}, err
	}

	created, err := u.materials.Create(ctx, m)
	if err != nil {
		return entities.MaterialRate{}, err
	}
	slog.InfoContext(ctx, "[reference][usecase] material created", "material_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *ReferenceUseCase) UpdateMaterial(ctx context.Context, id string, in entities.MaterialUpdate) (entities.MaterialRate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaterialRate{}, ErrInvalidReferenceID
	}

	current, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.MaterialRate{}, err
	}
	if current.ID == "" {
		return entities.MaterialRate{}, ErrMaterialNotFound
	}

	next := trimMaterial(in.Apply(current))
	if err := validateMaterial(next); err != nil {
		return entities.MaterialRate{}, err
	}

	updated, err := u.materials.Update(ctx, next)
	if err != nil {
		return entities.MaterialRate{}, err
	}
	if updated.ID == "" {
		return entities.MaterialRate{}, ErrMaterialNotFound
	}
	slog.InfoContext(ctx, "[reference][usecase] material updated", "material_id", id)
	return updated, nil
}

func (u *ReferenceUseCase) DeleteMaterial(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidReferenceID
	}
	deleted, err := u.materials.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaterialNotFound
	}
	slog.InfoContext(ctx, "[reference][usecase] material deleted", "material_id", id)
	return nil
}

// SeedDefaults fills the city and material tables with the built-in reference
// rates. Each table is seeded only while it is empty.
func (u *ReferenceUseCase) SeedDefaults(ctx context.Context) error {
	cities, err := u.cities.List(ctx)
	if err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}
	if len(cities) == 0 {
		for _, c := range DefaultCities() {
			c.ID = uuid.NewString()
			if _, err := u.cities.Create(ctx, c); err != nil {
				return fmt.Errorf("seed city %s: %w", c.Name, err)
			}
		}
		slog.InfoContext(ctx, "[reference][usecase] seeded cities", "count", len(DefaultCities()))
	}

	materials, err := u.materials.List(ctx)
	if err != nil {
		return fmt.Errorf("seed materials: %w", err)
	}
	if len(materials) == 0 {
		for _, m := range DefaultMaterials() {
			m.ID = uuid.NewString()
			if _, err := u.materials.Create(ctx, m); err != nil {
				return fmt.Errorf("seed material %s: %w", m.Name, err)
			}
		}
		slog.InfoContext(ctx, "[reference][usecase] seeded materials", "count", len(DefaultMaterials()))
	}
	return nil
}

// DefaultCities are the reference city rates shipped with the service.
func DefaultCities() []entities.CityRate {
	return []entities.CityRate{
		{Name: "Karachi", Code: "KHI", LaborRatePerArea: 550, MaterialBaseRate: 1800, EquipmentRate: 250},
		{Name: "Hyderabad", Code: "HYD", LaborRatePerArea: 450, MaterialBaseRate: 1500, EquipmentRate: 200},
		{Name: "Sukkur", Code: "SKR", LaborRatePerArea: 400, MaterialBaseRate: 1300, EquipmentRate: 180},
	}
}

// DefaultMaterials are the reference material rates shipped with the service.
func DefaultMaterials() []entities.MaterialRate {
	return []entities.MaterialRate{
		{Name: "Cement", Category: "cement", Unit: "bag", StandardRate: 1250, PremiumRate: 1400, LuxuryRate: 1600},
		{Name: "Bricks", Category: "brick", Unit: "1000 pcs", StandardRate: 14000, PremiumRate: 18000, LuxuryRate: 22000},
		{Name: "Steel Bars", Category: "steel", Unit: "kg", StandardRate: 280, PremiumRate: 350, LuxuryRate: 450},
		{Name: "Sand", Category: "sand", Unit: "truck", StandardRate: 30000, PremiumRate: 35000, LuxuryRate: 40000},
		{Name: "Crush", Category: "crush", Unit: "truck", StandardRate: 35000, PremiumRate: 40000, LuxuryRate: 45000},
		{Name: "Tiles", Category: "tiles", Unit: "sq. ft.", StandardRate: 180, PremiumRate: 400, LuxuryRate: 800},
		{Name: "Paint", Category: "paint", Unit: "liter", StandardRate: 800, PremiumRate: 1200, LuxuryRate: 2000},
	}
}

func validateCity(c entities.CityRate) error {
	if c.Name == "" || c.Code == "" {
		return fmt.Errorf("%w: name and code are required", ErrInvalidCity)
	}
	if c.LaborRatePerArea < 0 || c.MaterialBaseRate < 0 || c.EquipmentRate < 0 {
		return ErrInvalidRate
	}
	return nil
}

func trimMaterial(m entities.MaterialRate) entities.MaterialRate {
	m.Name = strings.TrimSpace(m.Name)
	m.Category = strings.TrimSpace(m.Category)
	m.Unit = strings.TrimSpace(m.Unit)
	return m
}

func validateMaterial(m entities.MaterialRate) error {
	if m.Name == "" || m.Category == "" || m.Unit == "" {
		return fmt.Errorf("%w: name, category and unit are required", ErrInvalidMaterial)
	}
	if m.StandardRate < 0 || m.PremiumRate < 0 || m.LuxuryRate < 0 {
		return ErrInvalidRate
	}
	return nil
}
