package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
)

// TransferHandler maneja traslados de stock y consultas del ledger (protegido).
type TransferHandler struct {
	uc     *inventory.TransferUseCase
	ledger *inventory.LedgerUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.TransferUseCase, ledger *inventory.LedgerUseCase) *TransferHandler {
	return &TransferHandler{uc: uc, ledger: ledger}
}

// Transfer godoc
// @Summary      Trasladar stock entre ubicaciones
// @Description  Aplica los tramos en orden, todos o ninguno. Origen y destino
//
//	vacíos son el pseudo-lugar "sin asignar"; delete_only retira el stock
//	del inventario. Cada tramo exige stock suficiente en el origen en el
//	momento de aplicarse.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "item_id y tramos ordenados"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	householdID, userName := GetHouseholdID(c), GetUserName(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	legs := make([]inventory.TransferLeg, 0, len(in.Legs))
	for _, l := range in.Legs {
		legs = append(legs, inventory.TransferLeg{
			From:       locationFromID(l.FromCabinetID),
			To:         locationFromID(l.ToCabinetID),
			Amount:     l.Amount,
			DeleteOnly: l.DeleteOnly,
		})
	}
	if err := h.uc.Transfer(c.Context(), householdID, userName, in.ItemID, legs); err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "traslado aplicado"})
}

// GetStock godoc
// @Summary      Desglose de stock de un artículo por ubicación
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del artículo"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [get]
func (h *TransferHandler) GetStock(c *fiber.Ctx) error {
	householdID := GetHouseholdID(c)
	if householdID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	itemID := c.Params("id")
	entries, err := h.ledger.ListByItem(householdID, itemID)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	total := 0
	slots := make([]dto.StockSlotResponse, 0, len(entries))
	for _, e := range entries {
		total += e.Quantity
		slots = append(slots, dto.StockSlotResponse{
			CabinetID: e.Location.CabinetID,
			Quantity:  e.Quantity,
		})
	}
	return c.JSON(fiber.Map{"item_id": itemID, "quantity": total, "stock": slots})
}

// locationFromID interpreta un cabinet_id de la API: vacío = sin asignar.
func locationFromID(cabinetID string) entity.LocationRef {
	if cabinetID == "" {
		return entity.Unassigned()
	}
	return entity.AtCabinet(cabinetID)
}
