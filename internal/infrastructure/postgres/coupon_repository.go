package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/internal/domain/repository"
)

var _ repository.CouponRepository = (*CouponRepo)(nil)

const (
	insertCouponSQL = `
		INSERT INTO coupons (store_id, title, type, code, description, discount, due_date, ref_link, is_verified, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	connectCouponCategoriesSQL = `
		INSERT INTO coupon_categories (coupon_id, category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2)`
)

// CouponRepo implementación del puerto CouponRepository sobre PostgreSQL.
type CouponRepo struct {
	db DB
}

// NewCouponRepository construye el adaptador de persistencia para cupones.
func NewCouponRepository(db DB) *CouponRepo {
	return &CouponRepo{db: db}
}

// Create inserta el cupón. Una tienda inexistente viola la FK y se reporta como ErrRelatedNotFound.
func (r *CouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	return runInTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertCouponSQL,
			coupon.StoreID, coupon.Title, coupon.Type, coupon.Code, coupon.Description,
			coupon.Discount, coupon.DueDate, coupon.RefLink, coupon.IsVerified, coupon.LogoURL,
		).Scan(&coupon.ID, &coupon.CreatedAt)
		if err != nil {
			switch {
			case isUniqueViolation(err):
				return domain.ErrDuplicate
			case isForeignKeyViolation(err):
				return fmt.Errorf("%w: store %d", domain.ErrRelatedNotFound, coupon.StoreID)
			case isNumericOutOfRange(err):
				return fmt.Errorf("%w: discount fuera de rango", domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert coupon: %w", err)
		}
		return connect(ctx, tx, connectCouponCategoriesSQL, coupon.ID, coupon.CategoryIDs, "categories")
	})
}
