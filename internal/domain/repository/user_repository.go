package repository

import (
	"context"

	"github.com/tu-usuario/cadastro-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByCompany elimina todos los usuarios de la empresa y devuelve cuántos eliminó.
	DeleteByCompany(ctx context.Context, companyID int64) (int64, error)
}
