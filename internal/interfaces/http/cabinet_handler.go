package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
)

// CabinetHandler maneja las peticiones HTTP de gabinetes (protegido).
type CabinetHandler struct {
	uc *inventory.CabinetUseCase
}

// NewCabinetHandler construye el handler.
func NewCabinetHandler(uc *inventory.CabinetUseCase) *CabinetHandler {
	return &CabinetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear gabinete
// @Tags         cabinets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCabinetRequest  true  "name, room_id"
// @Success      201   {object}  dto.CabinetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cabinets [post]
func (h *CabinetHandler) Create(c *fiber.Ctx) error {
	householdID, userName := GetHouseholdID(c), GetUserName(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCabinetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), householdID, userName, in)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gabinetes
// @Tags         cabinets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CabinetResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cabinets [get]
func (h *CabinetHandler) List(c *fiber.Ctx) error {
	householdID := GetHouseholdID(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.List(householdID)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener gabinete por ID
// @Tags         cabinets
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del gabinete"
// @Success      200  {object}  dto.CabinetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cabinets/{id} [get]
func (h *CabinetHandler) GetByID(c *fiber.Ctx) error {
	householdID := GetHouseholdID(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.GetByID(householdID, c.Params("id"))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gabinete
// @Tags         cabinets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del gabinete"
// @Param        body  body  dto.UpdateCabinetRequest  true  "campos a actualizar (nil = sin cambio)"
// @Success      200   {object}  dto.CabinetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cabinets/{id} [put]
func (h *CabinetHandler) Update(c *fiber.Ctx) error {
	householdID, userName := GetHouseholdID(c), GetUserName(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateCabinetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), householdID, userName, c.Params("id"), in)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gabinete
// @Description  El stock que estaba en el gabinete pasa a "sin asignar"; los
//
//	totales por artículo no cambian.
//
// @Tags         cabinets
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del gabinete"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cabinets/{id} [delete]
func (h *CabinetHandler) Delete(c *fiber.Ctx) error {
	householdID, userName := GetHouseholdID(c), GetUserName(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(c.Context(), householdID, userName, c.Params("id")); err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "gabinete eliminado"})
}
