package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserInactive       = errors.New("el usuario está desactivado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock de café verde insuficiente")
	ErrInvalidYield       = errors.New("la cantidad tostada no puede superar la cantidad verde")
	ErrAmountMismatch     = errors.New("el total no coincide con cantidad x precio")
)
