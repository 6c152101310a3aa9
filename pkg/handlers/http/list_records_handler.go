package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listRecordsHandler struct {
	logger *logrus.Logger
	finder moderation.RecordFinder
}

func NewListRecordsHandler(logger *logrus.Logger, finder moderation.RecordFinder) Handler {
	return &listRecordsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List recent usage records
// @Description Returns the most recent moderation records, newest first
// @Tags Moderation
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param limit query int false "Number of records (default 100, max 1000)"
// @Success 200 {object} response.RecordsOutput "Records"
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Router /api/v1/moderation/records [get]
func (h *listRecordsHandler) Handle(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", moderation.DefaultRecordsLimit)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must not be negative"})
	}
	limit = moderation.ClampLimit(limit)

	records, err := h.finder.Recent(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list records"})
	}
	return c.Status(fiber.StatusOK).JSON(response.RecordsOutput{
		Records: records,
		Count:   len(records),
		Limit:   limit,
	})
}
