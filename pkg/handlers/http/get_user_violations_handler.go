package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getUserViolationsHandler struct {
	logger *logrus.Logger
	finder moderation.RecordFinder
}

func NewGetUserViolationsHandler(logger *logrus.Logger, finder moderation.RecordFinder) Handler {
	return &getUserViolationsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Get a learner's violations
// @Description Returns the rolling violation counter and the learner's persisted records
// @Tags Moderation
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param user_id path string true "Learner id"
// @Param limit query int false "Number of records (default 100, max 1000)"
// @Success 200 {object} moderation.UserViolations "Violations"
// @Router /api/v1/moderation/users/{user_id}/violations [get]
func (h *getUserViolationsHandler) Handle(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	violations, err := h.finder.ForUser(c.UserContext(), userID, c.QueryInt("limit", moderation.DefaultRecordsLimit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get user violations"})
	}
	return c.Status(fiber.StatusOK).JSON(violations)
}
