package dto

import "github.com/jhoicas/couponhub-api/pkg/validate"

// Valores del campo addToHomePage.
const (
	HomePageYes = "yes"
	HomePageNo  = "no"
)

// ErrorResponse cuerpo de error HTTP: {success:false, error}.
// Fields solo se incluye cuando falla la validación del esquema.
type ErrorResponse struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error"`
	Fields  validate.FieldErrors `json:"fields,omitempty"`
}

// OptionResponse par id/nombre de los listados (getstores, getcategories).
type OptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StoreListResponse salida de GET /api/getstores.
type StoreListResponse struct {
	Success bool             `json:"success"`
	Stores  []OptionResponse `json:"stores"`
}

// CategoryListResponse salida de GET /api/getcategories.
type CategoryListResponse struct {
	Success    bool             `json:"success"`
	Categories []OptionResponse `json:"categories"`
}
