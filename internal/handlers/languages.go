package handlers

import (
	"github.com/devtemiloluwa/translator-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

// supportedLanguages is the fixed list the client offers. Codes are opaque to
// the server; they are forwarded to providers unchanged.
var supportedLanguages = []models.Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
}

func (h *Handler) GetLanguages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages": supportedLanguages,
	})
}
