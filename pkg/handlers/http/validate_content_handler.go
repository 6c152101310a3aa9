package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type validateContentHandler struct {
	logger          *logrus.Logger
	validator       moderation.Validator
	recordByDefault bool
}

// NewValidateContentHandler exposes the validation gate. When recordByDefault
// is false no request can switch recording on.
func NewValidateContentHandler(
	logger *logrus.Logger,
	validator moderation.Validator,
	recordByDefault bool,
) Handler {
	return &validateContentHandler{
		logger:          logger,
		validator:       validator,
		recordByDefault: recordByDefault,
	}
}

// Handle @Summary Validate learner text
// @Description Runs the validation gate and returns the verdict. Violations are recorded unless record_profanity is false.
// @Tags Moderation
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Learner id"
// @Param request body request.ValidateContentRequest true "Text to validate"
// @Success 200 {object} moderation.ValidationResult "Verdict"
// @Failure 400 {object} map[string]interface{} "Invalid body or context"
// @Router /api/v1/content/validate [post]
func (h *validateContentHandler) Handle(c *fiber.Ctx) error {
	var req request.ValidateContentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse validate request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, client := caller(c)
	result := h.validator.Validate(c.UserContext(), req.Text, moderation.Options{
		Context:          req.Context,
		Language:         req.Language,
		UserID:           userID,
		Client:           client,
		DisableRecording: !h.recordByDefault || !req.ShouldRecord(),
	})
	return c.Status(fiber.StatusOK).JSON(result)
}
