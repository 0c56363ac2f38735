package entity

import "time"

// Product representa un producto del catálogo. SKU es único a nivel global
// (constraint en BD; el pre-check de aplicación es solo fast-fail).
// OwnerUserID referencia al User dueño: solo él puede mutarlo.
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string
	Manufacturer string
	Quantity     int // siempre >= 0
	OwnerUserID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
