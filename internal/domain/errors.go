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
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ErrNegativeQuantity cantidad de apertura, entrada o cierre menor que cero.
// Envuelve ErrInvalidInput para que los handlers lo traten como 400.
var ErrNegativeQuantity = fmt.Errorf("%w: las cantidades no pueden ser negativas", ErrInvalidInput)

// ErrQuantityOutOfRange cantidad con más de 3 decimales o con magnitud fuera de NUMERIC(14,3).
var ErrQuantityOutOfRange = fmt.Errorf("%w: cantidad fuera de rango (máx. 3 decimales y menor que 10^11)", ErrInvalidInput)
