package handlers

import (
	"errors"
	"time"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"github.com/devtemiloluwa/translator-app/internal/services"
	"github.com/devtemiloluwa/translator-app/internal/store"
	"github.com/devtemiloluwa/translator-app/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) Translate(c *fiber.Ctx) error {
	var req models.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.FailResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.FailResponse(c, fiber.StatusBadRequest, "Missing required fields")
	}

	translatedText, err := h.Translator.Translate(c.UserContext(), req.Text, req.Source, req.Target)
	if err != nil {
		if errors.Is(err, services.ErrMissingInput) {
			return utils.FailResponse(c, fiber.StatusBadRequest, "Missing required fields")
		}
		if errors.Is(err, services.ErrAllProvidersFailed) {
			return utils.FailResponse(c, fiber.StatusServiceUnavailable,
				"Translation service temporarily unavailable. Please try again later.")
		}
		logrus.WithError(err).Error("translation failed")
		return utils.FailResponse(c, fiber.StatusInternalServerError, "Translation failed. Please try again.")
	}

	// Save to history when a session resolved. Best effort: a failed write is
	// logged and swallowed, the client still gets its translation.
	if userID, ok := sessionUserID(c); ok {
		translation := models.Translation{
			UserID:         userID,
			OriginalText:   req.Text,
			TranslatedText: translatedText,
			SourceLang:     req.Source,
			TargetLang:     req.Target,
			CreatedAt:      time.Now(),
		}
		if _, err := h.Translations.Save(c.UserContext(), translation); err != nil {
			logrus.WithError(err).WithField("userId", userID.Hex()).Error("failed to save translation")
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"translatedText": translatedText,
	})
}

func (h *Handler) GetTranslations(c *fiber.Ctx) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return utils.FailResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	translations, err := h.Translations.ListByUser(c.UserContext(), userID)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch translations")
		return utils.FailResponse(c, fiber.StatusInternalServerError, "Failed to fetch translations")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"translations": translations,
	})
}

func (h *Handler) DeleteTranslation(c *fiber.Ctx) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return utils.FailResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// A malformed id cannot match any record, so it reads as not found.
	recordID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.FailResponse(c, fiber.StatusNotFound, "Translation not found")
	}

	if err := h.Translations.Delete(c.UserContext(), userID, recordID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.FailResponse(c, fiber.StatusNotFound, "Translation not found")
		}
		logrus.WithError(err).Error("failed to delete translation")
		return utils.FailResponse(c, fiber.StatusInternalServerError, "Failed to delete translation")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Translation deleted successfully",
	})
}
