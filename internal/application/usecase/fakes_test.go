package usecase_test

import (
	"context"

	"github.com/tu-usuario/cadastro-api/internal/application/ports"
	"github.com/tu-usuario/cadastro-api/internal/application/usecase"
	"github.com/tu-usuario/cadastro-api/internal/domain"
	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
	"github.com/tu-usuario/cadastro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia y el registro externo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	nextID    int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	for _, existing := range r.companies {
		if existing.CNPJ == c.CNPJ {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.companies[c.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCompanyRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.CNPJ == cnpj {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.companies[c.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.companies[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.User, error) {
	all, _ := r.List(ctx)
	var out []*entity.User
	for _, u := range all {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) DeleteByCompany(_ context.Context, companyID int64) (int64, error) {
	var n int64
	for id, u := range r.users {
		if u.CompanyID == companyID {
			delete(r.users, id)
			n++
		}
	}
	return n, nil
}

// fakeRegistry responde con resultados pre-cargados por CNPJ; los CNPJs no
// cargados se reportan como no encontrados.
type fakeRegistry struct {
	results map[string]ports.LookupResult
	calls   int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{results: make(map[string]ports.LookupResult)}
}

func (f *fakeRegistry) LookupCNPJ(_ context.Context, cnpj string) ports.LookupResult {
	f.calls++
	if res, ok := f.results[cnpj]; ok {
		return res
	}
	return ports.LookupResult{Status: ports.LookupNotFound}
}

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes
// (los fakes en memoria no necesitan transacción real).
type fakeTxRunner struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	return fn(f.companies, f.users)
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)
var _ ports.CompanyRegistryService = (*fakeRegistry)(nil)
var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
var _ repository.UserRepository = (*fakeUserRepo)(nil)
