package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrRelatedNotFound se devuelve cuando una lista de ids a conectar contiene ids inexistentes.
	ErrRelatedNotFound = errors.New("relación con registro inexistente")
	// ErrImageUpload distingue el fallo del host de imágenes de "sin imagen" (camino normal).
	ErrImageUpload = errors.New("error subiendo imagen")
)
