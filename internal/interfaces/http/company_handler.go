package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cadastro-api/internal/application/dto"
	"github.com/tu-usuario/cadastro-api/internal/application/usecase"
	"github.com/tu-usuario/cadastro-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Description  Valida el CNPJ contra el registro nacional antes de persistir
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", "cnpj, legal_name y trade_name son requeridos")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCNPJNotFound):
			return badRequest(c, "CNPJ_INVALID", "cnpj inválido o no encontrado en el registro")
		case errors.Is(err, domain.ErrRegistryUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(dto.ErrorResponse{Code: "REGISTRY_UNAVAILABLE", Message: "registro de empresas no disponible, reintente"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).
				JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa con ese CNPJ ya existe"})
		}
		return internalError(c, err)
	}
	c.Location(fmt.Sprintf("/companies/%d", out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Description  Reemplazo completo de campos; el id del cuerpo debe coincidir con el de la ruta
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", "id, cnpj, legal_name y trade_name son requeridos")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDMismatch):
			return badRequest(c, "ID_MISMATCH", "el id de la ruta no coincide con el del cuerpo")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "empresa no encontrada")
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).
				JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa con ese CNPJ ya existe"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Description  Elimina la empresa y todos sus usuarios dependientes (cascada atómica)
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "empresa no encontrada")
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
