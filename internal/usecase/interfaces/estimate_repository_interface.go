package interfaces

import (
	"construction_estimator/internal/domain/entities"
	"context"
)

// IEstimateRepository abstracts persistence of the estimate log.
//
// Records are append-only: the estimator must be able to
//   - store one record per successful calculation
//   - list a user's history (and the global log for admins) newest first
//   - delete a record on behalf of its owner or an admin
//
// Lookups return the zero value (empty ID) when nothing matches.

type IEstimateRepository interface {
	Create(ctx context.Context, r entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	ListByUserID(ctx context.Context, userID int64, page entities.PageRequest) (entities.EstimatePage, error)
	List(ctx context.Context, page entities.PageRequest) (entities.EstimatePage, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (entities.EstimateStats, error)
}
