package admin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

// Session usuario autenticado. Nil = sin sesión.
type Session struct {
	Name  string
	Email string
	Image string
	Role  string
}

// FallbackInitials avatar cuando el nombre no alcanza para dos iniciales.
const FallbackInitials = "QS"

// Initials primeras letras de las dos primeras palabras del nombre, en mayúscula.
func (s *Session) Initials() string {
	if s == nil {
		return FallbackInitials
	}
	words := strings.Fields(s.Name)
	if len(words) < 2 {
		return FallbackInitials
	}
	return firstUpper(words[0]) + firstUpper(words[1])
}

// IsAdmin true si la sesión tiene rol admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == entity.RoleAdmin
}

func firstUpper(w string) string {
	r, _ := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r))
}

// Preferencias de tema.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Theme preferencia del usuario y esquema del sistema operativo.
type Theme struct {
	Preference string
	SystemDark bool
}

// Resolved tema efectivo: light o dark.
func (t *Theme) Resolved() string {
	switch t.Preference {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		if t.SystemDark {
			return ThemeDark
		}
		return ThemeLight
	}
}

// Toggle fija la preferencia al opuesto del tema efectivo.
func (t *Theme) Toggle() {
	if t.Resolved() == ThemeDark {
		t.Preference = ThemeLight
		return
	}
	t.Preference = ThemeDark
}

// UIContext estado ambiente que recibe la capa de UI al inicializarse.
type UIContext struct {
	Session *Session
	Theme   *Theme
}

// NavLink enlace de la barra de administración.
type NavLink struct {
	Href  string
	Title string
}

var adminNavLinks = []NavLink{
	{Href: "/admin/createstore", Title: "Create Store"},
	{Href: "/admin/createcategory", Title: "Create Category"},
	{Href: "/admin/createcoupon", Title: "Create Coupon"},
}

// NavLinks enlaces visibles: los de administración solo para admin, ninguno en otro caso.
func NavLinks(ui UIContext) []NavLink {
	if !ui.Session.IsAdmin() {
		return nil
	}
	return append([]NavLink(nil), adminNavLinks...)
}
