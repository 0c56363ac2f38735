package dto

import "time"

// CreateUserRequest entrada para registrar un usuario (password en texto,
// se hashea en el caso de uso).
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,min=1,max=200"`
	LastName  string `json:"lastName" validate:"required,min=1,max=200"`
}

// UpdateUserRequest actualización parcial: nil = no tocar el campo.
// Un string en blanco (después de trim) también se ignora.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=200"`
	LastName  *string `json:"lastName" validate:"omitempty,max=200"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	AccountCreated time.Time `json:"accountCreated"`
	AccountUpdated time.Time `json:"accountUpdated"`
}

// CredentialSubject lo mínimo que necesita el middleware de basic auth:
// email + hash. No sale nunca por HTTP.
type CredentialSubject struct {
	Email        string
	PasswordHash string
}
