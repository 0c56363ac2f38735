package http

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"golang.org/x/crypto/bcrypt"
)

// Locals keys para el caller autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

const realm = `Basic realm="webapp"`

// CredentialResolver lo que el middleware necesita del core: lookup de
// credenciales por email y resolución de identidad del caller.
// Se inyecta en construcción; no hay wiring global.
type CredentialResolver interface {
	FindCredentialSubject(email string) (*dto.CredentialSubject, error)
	ResolveByEmail(email string) (*dto.UserResponse, error)
}

// BasicAuth valida Authorization: Basic contra el hash bcrypt persistido y
// deja id y email del caller en c.Locals. Cada request se re-autentica
// (stateless, sin sesiones).
func BasicAuth(resolver CredentialResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, password, ok := parseBasicAuth(c.Get("Authorization"))
		if !ok {
			return challenge(c, "MISSING_CREDENTIALS", "Authorization: Basic requerido")
		}
		subject, err := resolver.FindCredentialSubject(email)
		if err != nil || subject == nil {
			// Mismo mensaje para usuario inexistente y password incorrecto:
			// no revelar cuál de los dos falló.
			return challenge(c, "INVALID_CREDENTIALS", "credenciales inválidas")
		}
		if bcrypt.CompareHashAndPassword([]byte(subject.PasswordHash), []byte(password)) != nil {
			return challenge(c, "INVALID_CREDENTIALS", "credenciales inválidas")
		}
		caller, err := resolver.ResolveByEmail(subject.Email)
		if err != nil || caller == nil {
			return challenge(c, "INVALID_CREDENTIALS", "credenciales inválidas")
		}
		c.Locals(LocalUserID, caller.ID)
		c.Locals(LocalUserEmail, caller.Email)
		return c.Next()
	}
}

func parseBasicAuth(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func challenge(c *fiber.Ctx, code, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, realm)
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// GetUserID devuelve el ID del caller (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserEmail devuelve el email del caller (después del middleware de auth).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
