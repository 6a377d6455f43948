package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const (
	insertStoreSQL = `
		INSERT INTO stores (name, slug, title, logo_url, ref_link, add_to_home_page, average_discount, best_offer, description, hint, more_about, faq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	connectStoreCategoriesSQL = `
		INSERT INTO store_categories (store_id, category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2)`

	connectSimilarStoresSQL = `
		INSERT INTO similar_stores (store_id, similar_store_id)
		SELECT $1, s.id FROM stores s WHERE s.id = ANY($2) AND s.id <> $1`

	// Dirección inversa de la relación simétrica.
	connectSimilarStoresBackSQL = `
		INSERT INTO similar_stores (store_id, similar_store_id)
		SELECT s.id, $1 FROM stores s WHERE s.id = ANY($2) AND s.id <> $1`
)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	db DB
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(db DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// Create inserta la tienda y sus conexiones en una sola transacción.
// Nombre repetido -> domain.ErrDuplicate; id relacionado inexistente -> domain.ErrRelatedNotFound.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	faq := store.FAQ
	if faq == nil {
		faq = []entity.FAQItem{}
	}
	faqJSON, err := json.Marshal(faq)
	if err != nil {
		return fmt.Errorf("serializar faq: %w", err)
	}

	return runInTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertStoreSQL,
			store.Name, store.Slug, store.Title, store.LogoURL, store.RefLink, store.AddToHomePage,
			store.AverageDiscount, store.BestOffer, store.Description, store.Hint, store.MoreAbout, string(faqJSON),
		).Scan(&store.ID, &store.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert store: %w", err)
		}
		if err := connect(ctx, tx, connectStoreCategoriesSQL, store.ID, store.CategoryIDs, "categories"); err != nil {
			return err
		}
		if err := connect(ctx, tx, connectSimilarStoresSQL, store.ID, store.SimilarStoreIDs, "similarStores"); err != nil {
			return err
		}
		return connect(ctx, tx, connectSimilarStoresBackSQL, store.ID, store.SimilarStoreIDs, "similarStores")
	})
}

// ListSummaries lista id y nombre de todas las tiendas ordenadas por nombre.
func (r *StoreRepo) ListSummaries(ctx context.Context) ([]entity.Summary, error) {
	return listSummaries(ctx, r.db, `SELECT id, name FROM stores ORDER BY name`, "stores")
}

func listSummaries(ctx context.Context, q Querier, query, table string) ([]entity.Summary, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	list := make([]entity.Summary, 0)
	for rows.Next() {
		var s entity.Summary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
