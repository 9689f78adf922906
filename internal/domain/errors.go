package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrVendorNotFound     = errors.New("vendor no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del delegado de IA: indisponibilidad del servicio externo vs
	// respuesta que no cumple el esquema esperado. Se distinguen para que el
	// caller pueda decidir si un reintento manual tiene sentido.
	ErrAIUnavailable   = errors.New("servicio de IA no disponible")
	ErrAIResponseParse = errors.New("respuesta de IA no cumple el esquema")
)
