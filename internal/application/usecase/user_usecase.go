package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso de cuentas: registro, consulta y actualización
// parcial. Solo el propio usuario puede ver o mutar su cuenta.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register crea un usuario: hashea el password con bcrypt, persiste y relee
// la fila para devolver los timestamps tal como quedaron en BD.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Register(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El constraint único sobre email es la garantía real frente a registros
	// concurrentes; el pre-check de arriba es solo fast-fail.
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	refreshed, err := uc.repo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		refreshed = user
	}
	return toUserResponse(refreshed), nil
}

// GetByID devuelve un usuario. Solo el propio usuario puede consultarse:
// otro caller autenticado recibe ErrForbidden.
func (uc *UserUseCase) GetByID(id, callerUserID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !domain.IsSelf(user, callerUserID) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial sobre la propia cuenta: firstName,
// lastName y password se tocan solo si vienen presentes y no en blanco
// (después de trim). Si ningún campo reconocido viene, ErrInvalidInput.
// Email e ID son inmutables.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest, callerUserID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !domain.IsSelf(user, callerUserID) {
		return nil, domain.ErrForbidden
	}

	updated := false
	if in.FirstName != nil {
		if v := strings.TrimSpace(*in.FirstName); v != "" {
			user.FirstName = v
			updated = true
		}
	}
	if in.LastName != nil {
		if v := strings.TrimSpace(*in.LastName); v != "" {
			user.LastName = v
			updated = true
		}
	}
	if in.Password != nil {
		if v := strings.TrimSpace(*in.Password); v != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = string(hash)
			updated = true
		}
	}
	if !updated {
		return nil, domain.ErrInvalidInput
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	refreshed, err := uc.repo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		refreshed = user
	}
	return toUserResponse(refreshed), nil
}

// FindCredentialSubject expone email + hash para el middleware de basic auth.
// Es la única superficie del core hacia la autenticación (no hay wiring global).
func (uc *UserUseCase) FindCredentialSubject(email string) (*dto.CredentialSubject, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.CredentialSubject{Email: user.Email, PasswordHash: user.PasswordHash}, nil
}

// ResolveByEmail devuelve el usuario completo para el middleware, que necesita
// el ID del caller para los chequeos de propiedad.
func (uc *UserUseCase) ResolveByEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		AccountCreated: u.CreatedAt,
		AccountUpdated: u.UpdatedAt,
	}
}
