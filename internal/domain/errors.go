package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateSKU       = errors.New("el SKU ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrProductMismatch    = errors.New("la imagen no pertenece al producto indicado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrBlobStore          = errors.New("almacenamiento de objetos no disponible")
)
