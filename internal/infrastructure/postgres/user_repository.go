package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cadastro-api/internal/domain"
	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
	"github.com/tu-usuario/cadastro-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El ID lo genera la base (BIGSERIAL).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, login, password_hash, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.Login, user.PasswordHash, user.CompanyID,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, name, login, password_hash, company_id, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update reemplaza los campos de un usuario existente.
// Devuelve domain.ErrNotFound si el ID no existe (cero filas afectadas).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, login = $3, password_hash = $4, company_id = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Login, user.PasswordHash, user.CompanyID, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los usuarios ordenados por ID.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT id, name, login, password_hash, company_id, created_at, updated_at
		FROM users ORDER BY id`)
}

// ListByCompany devuelve los usuarios de una empresa ordenados por ID.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT id, name, login, password_hash, company_id, created_at, updated_at
		FROM users WHERE company_id = $1 ORDER BY id`, companyID)
}

// Delete elimina un usuario por ID. Devuelve domain.ErrNotFound si no existe.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCompany elimina todos los usuarios de la empresa (cascada de Company.Delete).
func (r *UserRepo) DeleteByCompany(ctx context.Context, companyID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete users by company: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
