package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/request"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createTranslationHandler struct {
	logger    *logrus.Logger
	submitter translation.Submitter
}

func NewCreateTranslationHandler(logger *logrus.Logger, submitter translation.Submitter) Handler {
	return &createTranslationHandler{
		logger:    logger,
		submitter: submitter,
	}
}

// Handle @Summary Translate learner text
// @Description Validates the text and, when it passes, translates it with the configured provider
// @Tags Translations
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Learner id"
// @Param request body request.TranslationRequest true "Translation request"
// @Success 200 {object} response.TranslationOutput "Translation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} response.BlockedOutput "Blocked by moderation"
// @Failure 502 {object} map[string]interface{} "Translation provider failure"
// @Router /api/v1/translations [post]
func (h *createTranslationHandler) Handle(c *fiber.Ctx) error {
	var req request.TranslationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse translation request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, client := caller(c)
	result, err := h.submitter.Submit(c.UserContext(), translation.Request{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		UserID:         userID,
		Client:         client,
	})
	if err != nil {
		return translationError(c, h.logger, err)
	}
	return writeTranslationResult(c, result)
}

func writeTranslationResult(c *fiber.Ctx, result *translation.Result) error {
	if result.Blocked {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBlockedOutput(result.Validation))
	}
	return c.Status(fiber.StatusOK).JSON(response.TranslationOutput{
		TranslatedText:         result.TranslatedText,
		DetectedSourceLanguage: result.DetectedSourceLanguage,
		Provider:               result.Provider,
	})
}
