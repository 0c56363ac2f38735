package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListByOwner(ownerUserID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
