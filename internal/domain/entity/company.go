package entity

import "time"

// Company representa una empresa registrada en el sistema (enfoque Brasil: CNPJ).
// No guarda referencia a sus usuarios; la relación 1:N se resuelve por query
// en el repositorio y se proyecta en los DTOs (evita ciclos de serialización).
type Company struct {
	ID        int64
	CNPJ      string // almacenado normalizado (solo dígitos, 14 posiciones)
	LegalName string // razão social
	TradeName string // nome fantasia
	CreatedAt time.Time
	UpdatedAt time.Time
}
