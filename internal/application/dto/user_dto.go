package dto

import "time"

// CreateUserRequest entrada para crear un usuario. CompanyID debe referir a
// una empresa existente.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Login     string `json:"login" validate:"required,min=1,max=100"`
	Password  string `json:"password" validate:"required,min=1"`
	CompanyID int64  `json:"company_id" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario (reemplazo completo).
// Password vacío conserva la credencial actual.
type UpdateUserRequest struct {
	ID        int64  `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Login     string `json:"login" validate:"required,min=1,max=100"`
	Password  string `json:"password"`
	CompanyID int64  `json:"company_id" validate:"required"`
}

// UserResponse salida de un usuario. Incluye la razón social de la empresa
// en línea en lugar del objeto Company completo (sin ciclo, sin credencial).
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Login       string    `json:"login"`
	CompanyID   int64     `json:"company_id"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
