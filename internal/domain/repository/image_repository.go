package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ImageRepository define el puerto de persistencia para metadatos de Image (DIP).
type ImageRepository interface {
	Create(image *entity.Image) error
	GetByID(id string) (*entity.Image, error)
	ListByProduct(productID string) ([]*entity.Image, error)
	Delete(id string) error
	// DeleteByProduct borra todas las filas del producto en una sola operación.
	DeleteByProduct(productID string) error
}
