package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos, con SKU único global y
// mutaciones restringidas al dueño. Las lecturas son públicas.
//
// Política 404-vs-403: en update/delete un producto ajeno responde igual que
// uno inexistente (ErrNotFound), para no confirmar existencia de recursos de
// otros usuarios en rutas de mutación.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images *ImageUseCase
	tx     TxRunner
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images *ImageUseCase, tx TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images, tx: tx, log: log}
}

// Create crea un producto con el caller como dueño y relee la fila persistida
// para devolver los timestamps tal como quedaron en BD.
// Devuelve ErrDuplicateSKU si el SKU ya está en uso (el pre-check es fast-fail;
// la garantía real es el constraint único, que el repo traduce al mismo error).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, callerUserID string) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		SKU:          in.SKU,
		Manufacturer: in.Manufacturer,
		Quantity:     *in.Quantity,
		OwnerUserID:  callerUserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Str("owner", callerUserID).Msg("producto creado")

	refreshed, err := uc.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		refreshed = product
	}
	return toProductResponse(refreshed), nil
}

// GetByID obtiene un producto por ID. Lectura pública, sin chequeo de dueño.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListAll lista todos los productos, sin filtro ni paginación.
func (uc *ProductUseCase) ListAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByOwner lista los productos del caller.
func (uc *ProductUseCase) ListByOwner(callerUserID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByOwner(callerUserID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica una actualización parcial estilo PATCH dentro de una
// transacción: name, description y manufacturer se tocan si vienen presentes
// y no en blanco (trim); sku además debe seguir siendo único si cambia
// (ErrDuplicateSKU); quantity aplica siempre que venga, incluido cero.
// Producto inexistente o ajeno: ErrNotFound. Sin campos reconocidos:
// ErrInvalidInput.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, callerUserID string) (*dto.ProductResponse, error) {
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.ImageRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil || !domain.IsOwner(product, callerUserID) {
			return domain.ErrNotFound
		}

		updated := false
		if in.Name != nil {
			if v := strings.TrimSpace(*in.Name); v != "" {
				product.Name = v
				updated = true
			}
		}
		if in.Description != nil {
			if v := strings.TrimSpace(*in.Description); v != "" {
				product.Description = v
				updated = true
			}
		}
		if in.SKU != nil {
			if v := strings.TrimSpace(*in.SKU); v != "" {
				if v != product.SKU {
					existing, err := products.GetBySKU(v)
					if err != nil {
						return err
					}
					if existing != nil {
						return domain.ErrDuplicateSKU
					}
				}
				product.SKU = v
				updated = true
			}
		}
		if in.Manufacturer != nil {
			if v := strings.TrimSpace(*in.Manufacturer); v != "" {
				product.Manufacturer = v
				updated = true
			}
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
			updated = true
		}
		if !updated {
			return domain.ErrInvalidInput
		}

		product.UpdatedAt = time.Now()
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}

	refreshed, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Str("product_id", id).Msg("producto actualizado")
	return toProductResponse(refreshed), nil
}

// Delete elimina un producto del caller. Primero corre la cascada de imágenes
// (blobs best-effort + metadatos) y recién después borra la fila del producto,
// para que no queden imágenes huérfanas. Producto inexistente o ajeno:
// ErrNotFound. Borrado definitivo, sin tombstone.
func (uc *ProductUseCase) Delete(ctx context.Context, id, callerUserID string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || !domain.IsOwner(product, callerUserID) {
		return domain.ErrNotFound
	}
	if err := uc.images.DeleteAllForProduct(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Str("owner", callerUserID).Msg("producto eliminado")
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		SKU:             p.SKU,
		Manufacturer:    p.Manufacturer,
		Quantity:        p.Quantity,
		DateAdded:       p.CreatedAt,
		DateLastUpdated: p.UpdatedAt,
		OwnerUserID:     p.OwnerUserID,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
