package domain

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// Predicados de propiedad. Toda mutación los evalúa contra el dueño
// PERSISTIDO (el entity recién leído de BD), nunca contra valores del request.

// IsOwner indica si userID es el dueño del producto.
func IsOwner(p *entity.Product, userID string) bool {
	if p == nil || userID == "" {
		return false
	}
	return p.OwnerUserID == userID
}

// IsSelf indica si userID corresponde al propio usuario.
func IsSelf(u *entity.User, userID string) bool {
	if u == nil || userID == "" {
		return false
	}
	return u.ID == userID
}
