package admin

import (
	"fmt"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
)

// FAQList preguntas frecuentes en el orden en que se agregaron.
type FAQList struct {
	items []dto.FAQItem
}

// Append agrega una fila al final.
func (l *FAQList) Append(question, answer string) {
	l.items = append(l.items, dto.FAQItem{Question: question, Answer: answer})
}

// Set reemplaza el contenido de la fila i.
func (l *FAQList) Set(i int, question, answer string) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("faq: índice %d fuera de rango", i)
	}
	l.items[i] = dto.FAQItem{Question: question, Answer: answer}
	return nil
}

// Remove quita la fila i; las siguientes conservan su orden.
func (l *FAQList) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("faq: índice %d fuera de rango", i)
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return nil
}

// Items copia de las filas. Nunca nil.
func (l *FAQList) Items() []dto.FAQItem {
	return append([]dto.FAQItem{}, l.items...)
}

// Len cantidad de filas.
func (l *FAQList) Len() int { return len(l.items) }

// Reset vacía la lista.
func (l *FAQList) Reset() { l.items = nil }
