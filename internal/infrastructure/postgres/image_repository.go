package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo implementación del puerto ImageRepository sobre PostgreSQL
// (usable con pool o tx).
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador de persistencia para metadatos de
// imágenes. Pasar pool o tx (Querier).
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Create persiste el metadato de una imagen.
func (r *ImageRepo) Create(image *entity.Image) error {
	query := `
		INSERT INTO images (image_id, product_id, file_name, s3_bucket_path, date_created)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.ProductID, image.FileName, image.S3Key, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID. (nil, nil) si no existe.
func (r *ImageRepo) GetByID(id string) (*entity.Image, error) {
	query := `
		SELECT image_id, product_id, file_name, s3_bucket_path, date_created
		FROM images WHERE image_id = $1`
	var img entity.Image
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&img.ID, &img.ProductID, &img.FileName, &img.S3Key, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

// ListByProduct lista las imágenes de un producto en orden de subida.
func (r *ImageRepo) ListByProduct(productID string) ([]*entity.Image, error) {
	query := `
		SELECT image_id, product_id, file_name, s3_bucket_path, date_created
		FROM images WHERE product_id = $1 ORDER BY date_created`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()
	var list []*entity.Image
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.FileName, &img.S3Key, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// Delete elimina una imagen por ID.
func (r *ImageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM images WHERE image_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las imágenes de un producto en un solo batch.
func (r *ImageRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM images WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete images by product: %w", err)
	}
	return nil
}
