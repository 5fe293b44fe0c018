package interfaces

import (
	"construction_estimator/internal/domain/entities"
	"context"
)

// IMaterialRepository abstracts persistence of material unit rates.
//
// List is ordered by category, then name. Lookups and Update return the zero
// value (empty ID) when the material does not exist.
type IMaterialRepository interface {
	List(ctx context.Context) ([]entities.MaterialRate, error)
	GetByID(ctx context.Context, id string) (entities.MaterialRate, error)
	Create(ctx context.Context, material entities.MaterialRate) (entities.MaterialRate, error)
	Update(ctx context.Context, material entities.MaterialRate) (entities.MaterialRate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
