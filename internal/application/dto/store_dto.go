package dto

import (
	"strings"
	"time"
)

// FAQItem pregunta/respuesta del formulario de tienda.
type FAQItem struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// CreateStoreRequest campo "data" del multipart de POST /api/createstore.
// Los ids relacionales viajan como strings, igual que los emite el multi-select.
type CreateStoreRequest struct {
	Name            string    `json:"name" validate:"required,max=120"`
	Title           string    `json:"title" validate:"max=200"`
	RefLink         string    `json:"ref_link" validate:"required,url"`
	AddToHomePage   string    `json:"addToHomePage" validate:"oneof=yes no"`
	AverageDiscount string    `json:"average_discount"`
	BestOffer       string    `json:"best_offer"`
	Description     string    `json:"description"`
	Hint            string    `json:"hint"`
	MoreAbout       string    `json:"moreAbout"`
	FAQ             []FAQItem `json:"faq" validate:"dive"`
	Categories      []string  `json:"categories" validate:"dive,number"`
	SimilarStores   []string  `json:"similarStores" validate:"dive,number"`
}

// Normalize recorta espacios y aplica el default de addToHomePage.
func (r *CreateStoreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Title = strings.TrimSpace(r.Title)
	r.RefLink = strings.TrimSpace(r.RefLink)
	if r.AddToHomePage == "" {
		r.AddToHomePage = HomePageNo
	}
}

// StoreResponse salida de una tienda creada.
type StoreResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	LogoURL         *string   `json:"logo_url"`
	RefLink         string    `json:"ref_link"`
	AddToHomePage   bool      `json:"addToHomePage"`
	AverageDiscount *string   `json:"average_discount"`
	BestOffer       *string   `json:"best_offer"`
	Description     *string   `json:"description"`
	Hint            *string   `json:"hint"`
	MoreAbout       *string   `json:"moreAbout"`
	FAQ             []FAQItem `json:"faq"`
	Categories      []int64   `json:"categories"`
	SimilarStores   []int64   `json:"similarStores"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateStoreResponse cuerpo 201 de POST /api/createstore.
type CreateStoreResponse struct {
	Success bool           `json:"success"`
	Store   *StoreResponse `json:"store,omitempty"`
}
