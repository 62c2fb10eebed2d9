package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrValidation es la raíz de los errores de entrada: se informan al usuario sin cambios de estado.
	ErrValidation        = errors.New("validación")
	ErrInvalidInput      = fmt.Errorf("%w: entrada inválida", ErrValidation)
	ErrEmptyName         = fmt.Errorf("%w: el nombre no puede estar vacío", ErrValidation)
	ErrDuplicateCategory = fmt.Errorf("%w: la categoría ya existe", ErrValidation)

	// ErrUpstream indica que un servicio externo (store, media, IA) falló o rechazó la operación.
	ErrUpstream = errors.New("servicio externo no disponible")
	// ErrNotConfigured se devuelve antes de llamar a la red cuando faltan credenciales.
	ErrNotConfigured = errors.New("servicio no configurado")
	// ErrAuth credenciales del proveedor ausentes o rechazadas (API key de IA).
	ErrAuth = errors.New("credenciales rechazadas por el proveedor")
)

// Upstream etiqueta err como fallo del servicio externo indicado.
func Upstream(service string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w (%s): %w", ErrUpstream, service, err)
}
