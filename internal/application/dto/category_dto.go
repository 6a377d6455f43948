package dto

import (
	"strings"
	"time"
)

// CreateCategoryRequest campo "data" del multipart de POST /api/createcategory.
type CreateCategoryRequest struct {
	Name              string   `json:"name" validate:"required,max=120"`
	Description       string   `json:"description"`
	Stores            []string `json:"stores" validate:"dive,number"`
	SimilarCategories []string `json:"similarCategories" validate:"dive,number"`
}

// Normalize recorta espacios.
func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// CategoryResponse salida de una categoría creada.
type CategoryResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       *string   `json:"description"`
	LogoURL           *string   `json:"logo_url"`
	Stores            []int64   `json:"stores"`
	SimilarCategories []int64   `json:"similarCategories"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateCategoryResponse cuerpo 201 de POST /api/createcategory.
type CreateCategoryResponse struct {
	Success  bool              `json:"success"`
	Category *CategoryResponse `json:"category,omitempty"`
}
