package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrProfileAlreadyExists = errors.New("el usuario ya tiene un perfil")
	ErrUsernameTaken        = errors.New("el nombre de usuario ya está en uso")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidDate          = errors.New("fecha inválida, formato esperado AAAA-MM-DD")
	ErrNegativeAmount       = errors.New("los montos no pueden ser negativos")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrAdminProtected       = errors.New("no se puede eliminar una cuenta de administrador")
	ErrConfirmationMismatch = errors.New("la frase de confirmación no coincide")
)
