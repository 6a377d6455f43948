package repository

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// Create traduce CategoryIDs y SimilarStoreIDs en conexiones con filas existentes.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	ListSummaries(ctx context.Context) ([]entity.Summary, error)
}
