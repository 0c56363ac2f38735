package entity

import "time"

// User representa una cuenta del sistema. Email es único y, junto con ID,
// inmutable después del registro.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
