package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	CNPJ      string `json:"cnpj" validate:"required,min=14,max=18"`
	LegalName string `json:"legal_name" validate:"required,min=1,max=200"`
	TradeName string `json:"trade_name" validate:"required,min=1,max=200"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (reemplazo completo,
// incluye el ID que debe coincidir con el de la ruta).
type UpdateCompanyRequest struct {
	ID        int64  `json:"id" validate:"required"`
	CNPJ      string `json:"cnpj" validate:"required,min=14,max=18"`
	LegalName string `json:"legal_name" validate:"required,min=1,max=200"`
	TradeName string `json:"trade_name" validate:"required,min=1,max=200"`
}

// CompanyResponse salida de una empresa con sus usuarios anidados.
// Los usuarios se proyectan sin la referencia de vuelta a la empresa
// para evitar ciclos de serialización.
type CompanyResponse struct {
	ID        int64         `json:"id"`
	CNPJ      string        `json:"cnpj"`
	LegalName string        `json:"legal_name"`
	TradeName string        `json:"trade_name"`
	Users     []UserSummary `json:"users"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// UserSummary proyección reducida de un usuario dentro de CompanyResponse
// (sin empresa y sin credencial).
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}
