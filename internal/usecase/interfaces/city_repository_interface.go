package interfaces

import (
	"construction_estimator/internal/domain/entities"
	"context"
)

// ICityRepository abstracts persistence of per-city reference rates.
//
// List is ordered by name. GetByName matches the name exactly
// (case-sensitive). Lookups and Update return the zero value (empty ID) when
// the city does not exist.
type ICityRepository interface {
	List(ctx context.Context) ([]entities.CityRate, error)
	GetByID(ctx context.Context, id string) (entities.CityRate, error)
	GetByName(ctx context.Context, name string) (entities.CityRate, error)
	Create(ctx context.Context, c entities.CityRate) (entities.CityRate, error)
	Update(ctx context.Context, c entities.CityRate) (entities.CityRate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
