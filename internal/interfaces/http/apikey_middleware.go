package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
)

// HeaderAPIKey header con el secreto compartido.
const HeaderAPIKey = "x-api-key"

// APIKeyMiddleware compara x-api-key con el secreto configurado (TOOL_API_KEY).
// Secreto vacío = servidor mal configurado: responde 500 en vez de dejar pasar.
func APIKeyMiddleware(secret string) fiber.Handler {
	expected := []byte(secret)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MISCONFIGURED", Message: "TOOL_API_KEY no configurado"})
		}
		got := c.Get(HeaderAPIKey)
		if got == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "x-api-key requerido"})
		}
		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "x-api-key inválido"})
		}
		return c.Next()
	}
}
