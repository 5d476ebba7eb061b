package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tool-api/internal/application/business"
	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
	"github.com/jhoicas/inventory-tool-api/pkg/logger"
)

// BusinessHandler alta y consulta de cuentas de empresa (protegido por x-api-key).
type BusinessHandler struct {
	uc  *business.UseCase
	log *logger.Logger
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *business.UseCase, log *logger.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar cuenta de empresa
// @Tags         business
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos de la empresa y correos autorizados"
// @Success      201   {object}  dto.CreateBusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /business [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	h.log.Info().Int64("account_id", out.AccountID).Msg("cuenta de empresa registrada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByDomain godoc
// @Summary      Obtener cuenta de empresa por dominio
// @Tags         business
// @Security     ApiKey
// @Produce      json
// @Param        domain  path  string  true  "Dominio de correo (ej. contoso.com)"
// @Success      200     {object}  dto.BusinessAccountResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /business/{domain} [get]
func (h *BusinessHandler) GetByDomain(c *fiber.Ctx) error {
	out, err := h.uc.GetByDomain(c.UserContext(), c.Params("domain"))
	if err != nil {
		return respondError(c, h.log, err, "empresa no encontrada")
	}
	return c.JSON(out)
}
