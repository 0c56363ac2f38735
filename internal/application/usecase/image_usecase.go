package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Tipos de archivo aceptados para imágenes de producto (match case-insensitive).
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// ImageUseCase casos de uso de imágenes de producto: coordina el object store
// (bytes) y PostgreSQL (metadatos).
//
// Política de fallo parcial: en upload, un fallo del object store aborta todo
// y no se escribe metadato (no hay filas huérfanas). En delete es al revés:
// un fallo al borrar el blob se loguea y se sigue adelante con el metadato,
// para que un object store caído no bloquee borrados de cara al usuario.
type ImageUseCase struct {
	images   repository.ImageRepository
	products repository.ProductRepository
	blob     ports.BlobStore
	log      *logger.Logger
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(images repository.ImageRepository, products repository.ProductRepository, blob ports.BlobStore, log *logger.Logger) *ImageUseCase {
	return &ImageUseCase{images: images, products: products, blob: blob, log: log}
}

// Upload valida el archivo, verifica que el caller sea dueño del producto,
// sube los bytes al object store y recién entonces persiste el metadato.
// La validación corre antes de tocar cualquier store. El producto padre
// inexistente es ErrNotFound; ajeno es ErrForbidden (su existencia ya está
// implícita en la ruta /product/:id/image).
func (uc *ImageUseCase) Upload(ctx context.Context, productID string, in dto.UploadImageInput, callerUserID string) (*dto.ImageResponse, error) {
	ct := strings.ToLower(strings.TrimSpace(in.ContentType))
	if _, ok := allowedContentTypes[ct]; !ok {
		return nil, fmt.Errorf("%w: tipo de archivo no soportado: %q (solo JPEG, JPG y PNG)", domain.ErrInvalidInput, in.ContentType)
	}
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: el archivo viene vacío", domain.ErrInvalidInput)
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.IsOwner(product, callerUserID) {
		return nil, domain.ErrForbidden
	}

	// Key namespaceada por dueño/producto/instante: no colisiona entre
	// usuarios, productos ni uploads del mismo archivo.
	key := fmt.Sprintf("%s/%s/%d-%s", product.OwnerUserID, product.ID, time.Now().UnixMilli(), in.FileName)

	if err := uc.blob.Put(ctx, key, in.Data, ct); err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("upload al object store falló")
		return nil, fmt.Errorf("%w: %v", domain.ErrBlobStore, err)
	}

	image := &entity.Image{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		FileName:  in.FileName,
		S3Key:     key,
		CreatedAt: time.Now(),
	}
	if err := uc.images.Create(image); err != nil {
		return nil, err
	}
	uc.log.Info().Str("image_id", image.ID).Str("key", key).Msg("imagen subida")
	return toImageResponse(image), nil
}

// ListForProduct lista los metadatos de las imágenes de un producto.
// El producto inexistente es ErrNotFound; no hay chequeo de dueño en lecturas.
func (uc *ImageUseCase) ListForProduct(productID string) ([]dto.ImageResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.images.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toImageResponse(img))
	}
	return items, nil
}

// GetByID obtiene una imagen verificando que pertenezca al producto de la
// ruta: un image_id válido bajo otro producto responde ErrProductMismatch,
// para cortar el probing de IDs entre productos.
func (uc *ImageUseCase) GetByID(productID, imageID string) (*dto.ImageResponse, error) {
	image, err := uc.images.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ErrNotFound
	}
	if image.ProductID != productID {
		return nil, domain.ErrProductMismatch
	}
	return toImageResponse(image), nil
}

// Delete elimina una imagen del producto del caller. Intenta primero el blob:
// si el object store falla se loguea y SE SIGUE con el metadato igual (drift
// aceptado a propósito; ver comentario del tipo). Borrar una key ya
// inexistente no es error.
func (uc *ImageUseCase) Delete(ctx context.Context, productID, imageID, callerUserID string) error {
	image, err := uc.images.GetByID(imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	if image.ProductID != productID {
		return domain.ErrProductMismatch
	}
	product, err := uc.products.GetByID(image.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !domain.IsOwner(product, callerUserID) {
		return domain.ErrForbidden
	}

	if err := uc.blob.Delete(ctx, image.S3Key); err != nil {
		uc.log.Warn().Err(err).Str("key", image.S3Key).Msg("no se pudo borrar el blob; se elimina el metadato igual")
	}
	if err := uc.images.Delete(image.ID); err != nil {
		return err
	}
	uc.log.Info().Str("image_id", image.ID).Msg("imagen eliminada")
	return nil
}

// DeleteAllForProduct borra todas las imágenes de un producto: blobs
// best-effort uno a uno (fallos logueados e ignorados) y después los metadatos
// en un solo batch. Nunca falla el flujo de borrado de producto por errores
// del object store. Lo invoca ProductUseCase.Delete; no re-verifica dueño.
func (uc *ImageUseCase) DeleteAllForProduct(ctx context.Context, productID string) error {
	list, err := uc.images.ListByProduct(productID)
	if err != nil {
		return err
	}
	for _, img := range list {
		if err := uc.blob.Delete(ctx, img.S3Key); err != nil {
			uc.log.Warn().Err(err).Str("key", img.S3Key).Msg("no se pudo borrar el blob en la cascada")
		}
	}
	if err := uc.images.DeleteByProduct(productID); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", productID).Int("count", len(list)).Msg("imágenes del producto eliminadas")
	return nil
}

func toImageResponse(img *entity.Image) *dto.ImageResponse {
	if img == nil {
		return nil
	}
	return &dto.ImageResponse{
		ImageID:      img.ID,
		ProductID:    img.ProductID,
		FileName:     img.FileName,
		DateCreated:  img.CreatedAt,
		S3BucketPath: img.S3Key,
	}
}
