package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const (
	insertCategorySQL = `
		INSERT INTO categories (name, slug, description, logo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	connectCategoryStoresSQL = `
		INSERT INTO store_categories (store_id, category_id)
		SELECT s.id, $1 FROM stores s WHERE s.id = ANY($2)`

	connectSimilarCategoriesSQL = `
		INSERT INTO similar_categories (category_id, similar_category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2) AND c.id <> $1`

	connectSimilarCategoriesBackSQL = `
		INSERT INTO similar_categories (category_id, similar_category_id)
		SELECT c.id, $1 FROM categories c WHERE c.id = ANY($2) AND c.id <> $1`
)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserta la categoría con sus tiendas y categorías similares.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return runInTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertCategorySQL,
			category.Name, category.Slug, category.Description, category.LogoURL,
		).Scan(&category.ID, &category.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert category: %w", err)
		}
		if err := connect(ctx, tx, connectCategoryStoresSQL, category.ID, category.StoreIDs, "stores"); err != nil {
			return err
		}
		if err := connect(ctx, tx, connectSimilarCategoriesSQL, category.ID, category.SimilarCategoryIDs, "similarCategories"); err != nil {
			return err
		}
		return connect(ctx, tx, connectSimilarCategoriesBackSQL, category.ID, category.SimilarCategoryIDs, "similarCategories")
	})
}

// ListSummaries lista id y nombre de todas las categorías.
func (r *CategoryRepo) ListSummaries(ctx context.Context) ([]entity.Summary, error) {
	return listSummaries(ctx, r.db, `SELECT id, name FROM categories ORDER BY name`, "categories")
}
