package ports

import "context"

// LookupStatus clasifica el resultado de una consulta al registro de empresas.
// Distinguir NotFound de Unavailable permite al caso de uso responder 400 o 503
// en lugar de colapsar toda falla en "cnpj inválido".
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupUnavailable
)

// RegistryRecord es el registro efímero devuelto por el servicio externo.
// Solo se usa como compuerta en la creación de empresas; nunca se persiste.
type RegistryRecord struct {
	CNPJ        string // eco del CNPJ consultado
	Active      bool
	CompanyName string
	StatusID    int
	StatusText  string
}

// LookupResult resultado etiquetado de la consulta. Record solo es no-nil
// cuando Status == LookupFound.
type LookupResult struct {
	Status LookupStatus
	Record *RegistryRecord
}

// CompanyRegistryService puerto hacia el registro nacional de empresas.
// Las fallas de red, timeouts y respuestas malformadas nunca se propagan como
// error: se etiquetan como LookupUnavailable.
type CompanyRegistryService interface {
	LookupCNPJ(ctx context.Context, cnpj string) LookupResult
}
