package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cadastro-api/internal/domain"
	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
	"github.com/tu-usuario/cadastro-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa. El ID lo genera la base (BIGSERIAL) y se
// devuelve en company.ID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (cnpj, legal_name, trade_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		company.CNPJ, company.LegalName, company.TradeName,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `
		SELECT id, cnpj, legal_name, trade_name, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CNPJ, &c.LegalName, &c.TradeName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByCNPJ obtiene una empresa por CNPJ normalizado. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	query := `
		SELECT id, cnpj, legal_name, trade_name, created_at, updated_at
		FROM companies WHERE cnpj = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, cnpj).Scan(
		&c.ID, &c.CNPJ, &c.LegalName, &c.TradeName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by CNPJ: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos de una empresa existente.
// Devuelve domain.ErrNotFound si el ID no existe (cero filas afectadas).
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET cnpj = $2, legal_name = $3, trade_name = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.CNPJ, company.LegalName, company.TradeName, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las empresas ordenadas por ID.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT id, cnpj, legal_name, trade_name, created_at, updated_at
		FROM companies ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.CNPJ, &c.LegalName, &c.TradeName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
