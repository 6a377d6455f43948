package entity

import "time"

// Category agrupa tiendas y cupones. La relación con Store es la misma tabla vista desde el otro lado.
type Category struct {
	ID                 int64
	Name               string // único
	Slug               string
	Description        *string
	LogoURL            *string
	StoreIDs           []int64
	SimilarCategoryIDs []int64 // relación simétrica
	CreatedAt          time.Time
}
