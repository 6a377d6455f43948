package entity

import "time"

// FAQItem pregunta/respuesta de una tienda. El orden de la lista es significativo.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Store representa una tienda con cupones (marca, comercio).
// CategoryIDs y SimilarStoreIDs son operaciones "connect": solo referencian filas existentes.
type Store struct {
	ID              int64
	Name            string // único
	Slug            string // derivado de Name; no es único
	Title           string
	LogoURL         *string // nil si no se subió logo
	RefLink         string
	AddToHomePage   bool
	AverageDiscount *string
	BestOffer       *string
	Description     *string
	Hint            *string
	MoreAbout       *string
	FAQ             []FAQItem
	CategoryIDs     []int64
	SimilarStoreIDs []int64 // relación simétrica
	CreatedAt       time.Time
}
