package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrCompanyNotFound     = errors.New("empresa no encontrada")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrIDMismatch          = errors.New("el id de la ruta no coincide con el del cuerpo")
	ErrCNPJNotFound        = errors.New("cnpj inválido o no encontrado en el registro")
	ErrRegistryUnavailable = errors.New("registro de empresas no disponible")
)
