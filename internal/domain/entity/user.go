package entity

import "time"

// User representa un usuario del sistema. Pertenece a exactamente una Company
// (FK no nula); solo guarda el ID de la empresa, nunca el objeto completo.
type User struct {
	ID           int64
	Name         string
	Login        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	CompanyID    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
