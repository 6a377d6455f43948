package admin

import (
	"errors"
	"strconv"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
)

// ErrUnknownOption el id no está entre las opciones del multi-select.
var ErrUnknownOption = errors.New("opción desconocida")

// Option elemento seleccionable: ID es el id numérico como string.
type Option struct {
	ID    string
	Label string
}

// OptionsFrom convierte un listado {id, name} de la API en opciones.
func OptionsFrom(list []dto.OptionResponse) []Option {
	out := make([]Option, 0, len(list))
	for _, o := range list {
		out = append(out, Option{ID: strconv.FormatInt(o.ID, 10), Label: o.Name})
	}
	return out
}

// MultiSelect selección múltiple sobre una lista fija de opciones.
// La lista se copia al construir: cambios del llamador no la afectan.
type MultiSelect struct {
	options  []Option
	selected []string
}

// NewMultiSelect construye el multi-select sin selección.
func NewMultiSelect(options []Option) *MultiSelect {
	return &MultiSelect{options: append([]Option(nil), options...)}
}

// Options devuelve una copia de las opciones.
func (m *MultiSelect) Options() []Option {
	return append([]Option(nil), m.options...)
}

// Select agrega id al final de la selección. Repetir un id no lo duplica.
func (m *MultiSelect) Select(id string) error {
	if _, ok := m.find(id); !ok {
		return ErrUnknownOption
	}
	for _, s := range m.selected {
		if s == id {
			return nil
		}
	}
	m.selected = append(m.selected, id)
	return nil
}

// Deselect quita id de la selección si estaba.
func (m *MultiSelect) Deselect(id string) {
	for i, s := range m.selected {
		if s == id {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
			return
		}
	}
}

// Values ids seleccionados en orden de selección. Nunca nil.
func (m *MultiSelect) Values() []string {
	return append([]string{}, m.selected...)
}

// Labels etiquetas de la selección, en el mismo orden que Values.
func (m *MultiSelect) Labels() []string {
	out := make([]string, 0, len(m.selected))
	for _, id := range m.selected {
		if o, ok := m.find(id); ok {
			out = append(out, o.Label)
		}
	}
	return out
}

// Reset vacía la selección.
func (m *MultiSelect) Reset() { m.selected = nil }

func (m *MultiSelect) find(id string) (Option, bool) {
	for _, o := range m.options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
