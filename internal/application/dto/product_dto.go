package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	Description  string `json:"description"`
	SKU          string `json:"sku" validate:"required,min=1"`
	Manufacturer string `json:"manufacturer" validate:"required,min=1"`
	// Puntero para distinguir "ausente" de cero: quantity 0 es válido.
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// UpdateProductRequest actualización parcial estilo PATCH: nil = no tocar.
// Strings en blanco (después de trim) se ignoran; Quantity 0 sí aplica.
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	SKU          *string `json:"sku"`
	Manufacturer *string `json:"manufacturer"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SKU             string    `json:"sku"`
	Manufacturer    string    `json:"manufacturer"`
	Quantity        int       `json:"quantity"`
	DateAdded       time.Time `json:"dateAdded"`
	DateLastUpdated time.Time `json:"dateLastUpdated"`
	OwnerUserID     string    `json:"ownerUserId"`
}
