package repository

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

// CouponRepository define el puerto de persistencia para Coupon (DIP).
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
}
