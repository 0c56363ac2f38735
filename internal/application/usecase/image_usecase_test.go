package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// buildImageUC arma el caso de uso de imágenes sobre fakes, con un producto
// ya persistido a nombre de ownerID.
func buildImageUC(t *testing.T) (*usecase.ImageUseCase, *fakeImageRepo, *fakeBlobStore, *entity.Product) {
	t.Helper()
	products := newFakeProductRepo()
	images := newFakeImageRepo()
	blob := newFakeBlobStore()
	product := &entity.Product{
		ID:          "11111111-1111-1111-1111-111111111111",
		Name:        "Taladro percutor",
		SKU:         "SKU-001",
		OwnerUserID: ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, products.Create(product))
	return usecase.NewImageUseCase(images, products, blob, logger.Nop()), images, blob, product
}

func uploadJPEG(t *testing.T, uc *usecase.ImageUseCase, productID, fileName string) *dto.ImageResponse {
	t.Helper()
	out, err := uc.Upload(context.Background(), productID, dto.UploadImageInput{
		FileName:    fileName,
		ContentType: testJPEG,
		Data:        []byte{0xFF, 0xD8, 0xFF},
	}, ownerID)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// Upload feliz: bytes en el object store y metadato persistido, con la key
// namespaceada por dueño y producto.
func TestImageUpload(t *testing.T) {
	uc, images, blob, product := buildImageUC(t)

	out := uploadJPEG(t, uc, product.ID, "frente.jpg")
	assert.NotEmpty(t, out.ImageID)
	assert.Equal(t, product.ID, out.ProductID)
	assert.Equal(t, "frente.jpg", out.FileName)
	assert.True(t, strings.HasPrefix(out.S3BucketPath, ownerID+"/"+product.ID+"/"),
		"la key debe venir namespaceada como ownerID/productID/...")
	assert.True(t, strings.HasSuffix(out.S3BucketPath, "-frente.jpg"))

	exists, err := blob.Exists(context.Background(), out.S3BucketPath)
	require.NoError(t, err)
	assert.True(t, exists, "los bytes deben quedar en el object store")

	stored, err := images.GetByID(out.ImageID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, out.S3BucketPath, stored.S3Key)
}

// El content-type se valida antes de tocar cualquier store; el match es
// case-insensitive y solo acepta JPEG, JPG y PNG.
func TestImageUpload_ContentTypeInvalido(t *testing.T) {
	uc, _, blob, product := buildImageUC(t)

	for _, ct := range []string{"application/pdf", "image/gif", "text/plain", ""} {
		_, err := uc.Upload(context.Background(), product.ID, dto.UploadImageInput{
			FileName:    "doc.pdf",
			ContentType: ct,
			Data:        []byte("datos"),
		}, ownerID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "content-type %q debe rechazarse", ct)
	}
	assert.Empty(t, blob.puts, "un archivo rechazado no debe llegar al object store")

	// Variantes de mayúsculas del mismo tipo sí pasan.
	_, err := uc.Upload(context.Background(), product.ID, dto.UploadImageInput{
		FileName:    "frente.png",
		ContentType: "IMAGE/PNG",
		Data:        []byte{0x89, 0x50},
	}, ownerID)
	assert.NoError(t, err)
}

// Archivo vacío: rechazado antes de los stores.
func TestImageUpload_ArchivoVacio(t *testing.T) {
	uc, _, blob, product := buildImageUC(t)

	_, err := uc.Upload(context.Background(), product.ID, dto.UploadImageInput{
		FileName:    "vacio.jpg",
		ContentType: testJPEG,
	}, ownerID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, blob.puts)
}

// Subir a un producto ajeno es forbidden (la existencia del producto ya es
// pública); a uno inexistente, not found.
func TestImageUpload_ProductoAjenoOInexistente(t *testing.T) {
	uc, _, _, product := buildImageUC(t)

	_, err := uc.Upload(context.Background(), product.ID, dto.UploadImageInput{
		FileName:    "frente.jpg",
		ContentType: testJPEG,
		Data:        []byte{0xFF},
	}, otherID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Upload(context.Background(), "no-existe", dto.UploadImageInput{
		FileName:    "frente.jpg",
		ContentType: testJPEG,
		Data:        []byte{0xFF},
	}, ownerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el object store falla en upload no debe quedar metadato: el fallo aborta
// todo antes de escribir en BD.
func TestImageUpload_FalloDelStoreNoDejaMetadato(t *testing.T) {
	uc, images, blob, product := buildImageUC(t)
	blob.putErr = errStoreDown

	_, err := uc.Upload(context.Background(), product.ID, dto.UploadImageInput{
		FileName:    "frente.jpg",
		ContentType: testJPEG,
		Data:        []byte{0xFF},
	}, ownerID)
	assert.ErrorIs(t, err, domain.ErrBlobStore)

	left, err := images.ListByProduct(product.ID)
	require.NoError(t, err)
	assert.Empty(t, left, "un upload fallido no debe dejar fila de metadatos")
}

// GetByID exige que la imagen pertenezca al producto de la ruta.
func TestImageGetByID_MismatchDeProducto(t *testing.T) {
	uc, _, _, product := buildImageUC(t)
	img := uploadJPEG(t, uc, product.ID, "frente.jpg")

	got, err := uc.GetByID(product.ID, img.ImageID)
	require.NoError(t, err)
	assert.Equal(t, img.ImageID, got.ImageID)

	_, err = uc.GetByID("otro-producto", img.ImageID)
	assert.ErrorIs(t, err, domain.ErrProductMismatch)

	_, err = uc.GetByID(product.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ListForProduct: producto inexistente es not found; sin imágenes, lista vacía.
func TestImageList(t *testing.T) {
	uc, _, _, product := buildImageUC(t)

	list, err := uc.ListForProduct(product.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	uploadJPEG(t, uc, product.ID, "frente.jpg")
	uploadJPEG(t, uc, product.ID, "dorso.jpg")

	list, err = uc.ListForProduct(product.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = uc.ListForProduct("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Delete borra blob y metadato; solo el dueño del producto puede.
func TestImageDelete(t *testing.T) {
	uc, images, blob, product := buildImageUC(t)
	img := uploadJPEG(t, uc, product.ID, "frente.jpg")

	err := uc.Delete(context.Background(), product.ID, img.ImageID, otherID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(context.Background(), product.ID, img.ImageID, ownerID))

	stored, err := images.GetByID(img.ImageID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	exists, err := blob.Exists(context.Background(), img.S3BucketPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

// Un blob imposible de borrar no bloquea el delete: el metadato se elimina
// igual y el drift queda solo en el object store.
func TestImageDelete_BlobFallaPeroMetadatoSale(t *testing.T) {
	uc, images, blob, product := buildImageUC(t)
	img := uploadJPEG(t, uc, product.ID, "frente.jpg")

	blob.delErr = errStoreDown
	require.NoError(t, uc.Delete(context.Background(), product.ID, img.ImageID, ownerID))

	stored, err := images.GetByID(img.ImageID)
	require.NoError(t, err)
	assert.Nil(t, stored, "el metadato debe eliminarse aunque el blob falle")
}

// Borrar con mismatch de producto no toca nada.
func TestImageDelete_MismatchDeProducto(t *testing.T) {
	uc, images, _, product := buildImageUC(t)
	img := uploadJPEG(t, uc, product.ID, "frente.jpg")

	err := uc.Delete(context.Background(), "otro-producto", img.ImageID, ownerID)
	assert.ErrorIs(t, err, domain.ErrProductMismatch)

	stored, err := images.GetByID(img.ImageID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

// DeleteAllForProduct: blobs best-effort y metadatos en batch.
func TestImageDeleteAllForProduct(t *testing.T) {
	uc, images, blob, product := buildImageUC(t)
	uploadJPEG(t, uc, product.ID, "frente.jpg")
	uploadJPEG(t, uc, product.ID, "dorso.jpg")

	blob.delErr = errStoreDown
	require.NoError(t, uc.DeleteAllForProduct(context.Background(), product.ID))

	left, err := images.ListByProduct(product.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Len(t, blob.deletes, 2, "cada blob debe intentarse aunque falle")
}
