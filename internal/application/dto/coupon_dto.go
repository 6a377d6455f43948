package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCouponRequest campo "data" del multipart de POST /api/createcoupon.
type CreateCouponRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Type        string   `json:"type" validate:"oneof=code deal"`
	Code        string   `json:"code" validate:"required_if=Type code,max=64"`
	Description string   `json:"description"`
	Discount    string   `json:"discount" validate:"omitempty,numeric,amount"`
	DueDate     string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	RefLink     string   `json:"ref_link" validate:"omitempty,url"`
	IsVerified  bool     `json:"isVerified"`
	Store       string   `json:"store" validate:"required,number"`
	Categories  []string `json:"categories" validate:"dive,number"`
}

// Normalize recorta espacios; un cupón sin tipo es una oferta.
func (r *CreateCouponRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Code = strings.TrimSpace(r.Code)
	r.Discount = strings.TrimSpace(r.Discount)
	r.RefLink = strings.TrimSpace(r.RefLink)
	if r.Type == "" {
		r.Type = "deal"
	}
}

// CouponResponse salida de un cupón creado.
type CouponResponse struct {
	ID          int64               `json:"id"`
	StoreID     int64               `json:"store"`
	Title       string              `json:"title"`
	Type        string              `json:"type"`
	Code        *string             `json:"code"`
	Description *string             `json:"description"`
	Discount    decimal.NullDecimal `json:"discount"`
	DueDate     *time.Time          `json:"due_date"`
	RefLink     *string             `json:"ref_link"`
	IsVerified  bool                `json:"isVerified"`
	LogoURL     *string             `json:"logo_url"`
	Categories  []int64             `json:"categories"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreateCouponResponse cuerpo 201 de POST /api/createcoupon.
type CreateCouponResponse struct {
	Success bool            `json:"success"`
	Coupon  *CouponResponse `json:"coupon,omitempty"`
}
