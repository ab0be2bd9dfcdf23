package handlers

import (
	"github.com/devtemiloluwa/translator-app/internal/services"
	"github.com/devtemiloluwa/translator-app/internal/store"
	"github.com/gofiber/fiber/v2"
)

// Handler bundles the stores, the translation chain, and the JWT secret behind
// the HTTP surface.
type Handler struct {
	Users        store.UserStore
	Translations store.TranslationStore
	Translator   *services.Chain
	JWTSecret    []byte
}

func New(users store.UserStore, translations store.TranslationStore, translator *services.Chain, jwtSecret string) *Handler {
	return &Handler{
		Users:        users,
		Translations: translations,
		Translator:   translator,
		JWTSecret:    []byte(jwtSecret),
	}
}

// RegisterRoutes mounts everything under /api/v1.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/me", h.RequireAuth, h.Me)

	api.Get("/languages", h.GetLanguages)

	// Translate works anonymously; history is only written for a session.
	api.Post("/translate", h.OptionalAuth, h.Translate)

	api.Get("/translations", h.RequireAuth, h.GetTranslations)
	api.Delete("/translations/:id", h.RequireAuth, h.DeleteTranslation)
}

// ErrorHandler is fiber's top-level error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}
