package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/cadastro-api/internal/application/dto"
	"github.com/tu-usuario/cadastro-api/internal/application/ports"
	"github.com/tu-usuario/cadastro-api/internal/domain"
	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
	"github.com/tu-usuario/cadastro-api/internal/domain/repository"
	"github.com/tu-usuario/cadastro-api/pkg/cnpj"
)

// TxRunner ejecuta fn dentro de una transacción, con repos atados a ella.
// La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// CompanyUseCase aplica reglas de negocio para empresas: compuerta de registro
// en la creación y cascada atómica hacia usuarios en la eliminación.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	registry  ports.CompanyRegistryService
	tx        TxRunner
}

// NewCompanyUseCase construye el caso de uso con sus puertos inyectados.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	users repository.UserRepository,
	registry ports.CompanyRegistryService,
	tx TxRunner,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, users: users, registry: registry, tx: tx}
}

// Create valida el CNPJ contra el registro externo y persiste la empresa.
//
// La compuerta comprueba únicamente que el registro haya devuelto un eco de
// CNPJ no vacío; el flag de actividad NO se evalúa, así que una empresa
// inactiva en el registro igual se cadastra. Comportamiento pineado por test.
// Devuelve domain.ErrCNPJNotFound si el registro no conoce el CNPJ y
// domain.ErrRegistryUnavailable si el registro no respondió.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	normalized := cnpj.Normalize(in.CNPJ)

	existing, err := uc.companies.GetByCNPJ(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	result := uc.registry.LookupCNPJ(ctx, normalized)
	switch result.Status {
	case ports.LookupUnavailable:
		return nil, domain.ErrRegistryUnavailable
	case ports.LookupNotFound:
		return nil, domain.ErrCNPJNotFound
	}
	if result.Record == nil || result.Record.CNPJ == "" {
		return nil, domain.ErrCNPJNotFound
	}

	now := time.Now()
	company := &entity.Company{
		CNPJ:      normalized,
		LegalName: in.LegalName,
		TradeName: in.TradeName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, company)
}

// GetByID obtiene una empresa por ID con sus usuarios anidados.
// Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, company)
}

// List devuelve todas las empresas con sus usuarios anidados.
// Los usuarios se cargan en una sola query y se agrupan por empresa.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byCompany := make(map[int64][]dto.UserSummary)
	for _, u := range users {
		byCompany[u.CompanyID] = append(byCompany[u.CompanyID], userToSummary(u))
	}

	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		resp := companyToResponse(c, byCompany[c.ID])
		out = append(out, *resp)
	}
	return out, nil
}

// Update reemplaza los campos de la empresa identificada por id.
// El id de la ruta debe coincidir con in.ID (domain.ErrIDMismatch si no).
// No se re-valida el CNPJ contra el registro externo en actualizaciones.
// Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if id != in.ID {
		return nil, domain.ErrIDMismatch
	}
	existing, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	company := &entity.Company{
		ID:        id,
		CNPJ:      cnpj.Normalize(in.CNPJ),
		LegalName: in.LegalName,
		TradeName: in.TradeName,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, company)
}

// Delete elimina la empresa y todos sus usuarios dependientes en una sola
// transacción: o se eliminan todos los registros o ninguno.
// Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if _, err := users.DeleteByCompany(ctx, id); err != nil {
			return err
		}
		return companies.Delete(ctx, id)
	})
}

func (uc *CompanyUseCase) toResponse(ctx context.Context, c *entity.Company) (*dto.CompanyResponse, error) {
	users, err := uc.users.ListByCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userToSummary(u))
	}
	return companyToResponse(c, summaries), nil
}

func companyToResponse(c *entity.Company, users []dto.UserSummary) *dto.CompanyResponse {
	if users == nil {
		users = []dto.UserSummary{}
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		CNPJ:      c.CNPJ,
		LegalName: c.LegalName,
		TradeName: c.TradeName,
		Users:     users,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func userToSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, Name: u.Name, Login: u.Login}
}
