package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/application/records"
)

// RecordHandler maneja las consultas del historial de cambios (protegido).
type RecordHandler struct {
	uc *records.UseCase
}

// NewRecordHandler construye el handler.
func NewRecordHandler(uc *records.UseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// List godoc
// @Summary      Listar historial de cambios
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        id            query  string  false  "ID de un delta concreto"
// @Param        operate_type  query  int     false  "0=crear 1=actualizar 2=eliminar"
// @Param        entity_type   query  int     false  "0=gabinete 1=artículo 2=categoría"
// @Param        start_date    query  int     false  "Desde (epoch ms)"
// @Param        end_date      query  int     false  "Hasta (epoch ms)"
// @Success      200  {array}   dto.RecordResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	householdID := GetHouseholdID(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListRecordsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(householdID, in)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(out)
}

// Purge godoc
// @Summary      Purgar historial de cambios
// @Description  Elimina deltas del hogar según los mismos filtros del listado.
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        id            query  string  false  "ID de un delta concreto"
// @Param        operate_type  query  int     false  "0=crear 1=actualizar 2=eliminar"
// @Param        entity_type   query  int     false  "0=gabinete 1=artículo 2=categoría"
// @Param        start_date    query  int     false  "Desde (epoch ms)"
// @Param        end_date      query  int     false  "Hasta (epoch ms)"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/records [delete]
func (h *RecordHandler) Purge(c *fiber.Ctx) error {
	householdID := GetHouseholdID(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListRecordsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if err := h.uc.Purge(householdID, in); err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "historial purgado"})
}
