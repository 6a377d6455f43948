package repository

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	ListSummaries(ctx context.Context) ([]entity.Summary, error)
}
