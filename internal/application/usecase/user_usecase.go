package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cadastro-api/internal/application/dto"
	"github.com/tu-usuario/cadastro-api/internal/domain"
	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
	"github.com/tu-usuario/cadastro-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: la empresa referida
// debe existir al momento de la creación.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso con sus puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{users: users, companies: companies}
}

// Create valida que la empresa exista y persiste el usuario.
// La credencial se guarda como hash bcrypt, nunca en claro.
// Devuelve domain.ErrCompanyNotFound si company_id no resuelve.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Login:        in.Login,
		PasswordHash: string(hash),
		CompanyID:    in.CompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user, company.LegalName), nil
}

// GetByID obtiene un usuario por ID con la razón social de su empresa en línea.
// Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return uc.withCompanyName(ctx, user)
}

// List devuelve todos los usuarios. La razón social de cada empresa se carga
// una sola vez y se resuelve en memoria.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.LegalName
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *userToResponse(u, names[u.CompanyID]))
	}
	return out, nil
}

// Update reemplaza los campos del usuario identificado por in.ID.
// La referencia a la empresa NO se re-valida (a diferencia de Create); si
// in.Password está vacío se conserva el hash actual.
// Devuelve domain.ErrNotFound si el usuario no existe.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	hash := existing.PasswordHash
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	user := &entity.User{
		ID:           in.ID,
		Name:         in.Name,
		Login:        in.Login,
		PasswordHash: hash,
		CompanyID:    in.CompanyID,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now(),
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return uc.withCompanyName(ctx, user)
}

// Delete elimina un usuario por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.users.Delete(ctx, id)
}

func (uc *UserUseCase) withCompanyName(ctx context.Context, u *entity.User) (*dto.UserResponse, error) {
	var name string
	company, err := uc.companies.GetByID(ctx, u.CompanyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		name = company.LegalName
	}
	return userToResponse(u, name), nil
}

func userToResponse(u *entity.User, companyName string) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Login:       u.Login,
		CompanyID:   u.CompanyID,
		CompanyName: companyName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
