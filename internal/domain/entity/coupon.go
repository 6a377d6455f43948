package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cupón.
const (
	CouponTypeCode = "code"
	CouponTypeDeal = "deal"
)

// Coupon representa un código de descuento u oferta de una tienda.
type Coupon struct {
	ID          int64
	StoreID     int64
	Title       string // único por tienda
	Type        string // code, deal
	Code        *string
	Description *string
	Discount    decimal.NullDecimal
	DueDate     *time.Time
	RefLink     *string
	IsVerified  bool
	LogoURL     *string
	CategoryIDs []int64
	CreatedAt   time.Time
}
