package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listHighRiskUsersHandler struct {
	logger *logrus.Logger
	finder moderation.HighRiskFinder
}

func NewListHighRiskUsersHandler(logger *logrus.Logger, finder moderation.HighRiskFinder) Handler {
	return &listHighRiskUsersHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List high-risk users
// @Description Counts violations per user over the most recent records and returns users at or above the threshold
// @Tags Moderation
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param threshold query int false "Minimum violations"
// @Param limit query int false "Number of recent records to scan"
// @Success 200 {object} response.HighRiskUsersOutput "Users with the threshold and window used"
// @Failure 400 {object} map[string]interface{} "Negative threshold or limit"
// @Failure 500 {object} map[string]interface{} "Repository failure"
// @Router /api/v1/moderation/high-risk-users [get]
func (h *listHighRiskUsersHandler) Handle(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 0)
	window := c.QueryInt("limit", 0)
	if threshold < 0 || window < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "threshold and limit must not be negative"})
	}

	report, err := h.finder.Find(c.UserContext(), threshold, window)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute high-risk users"})
	}
	return c.Status(fiber.StatusOK).JSON(response.HighRiskUsersOutput{
		Users:     report.Users,
		Threshold: report.Threshold,
		Window:    report.Window,
		Scanned:   report.Scanned,
	})
}
