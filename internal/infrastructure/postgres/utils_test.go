package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// Solo el SQLSTATE 23505 cuenta como violación de unicidad, incluso envuelto.
func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "products_sku_key"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert product: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "una violación de FK no es unicidad")
	assert.False(t, isUniqueViolation(errors.New("error con 23505 en el texto pero sin PgError")))
	assert.False(t, isUniqueViolation(nil))
}
