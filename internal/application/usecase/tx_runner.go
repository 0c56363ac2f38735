package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la secuencia leer-verificar-
// escribir de una mutación no se entrelace con escritores concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		images repository.ImageRepository,
	) error) error
}
