package http

import (
	"errors"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getRecordHandler struct {
	logger *logrus.Logger
	finder moderation.RecordFinder
}

func NewGetRecordHandler(logger *logrus.Logger, finder moderation.RecordFinder) Handler {
	return &getRecordHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a usage record by ID
// @Tags Moderation
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param record_id path string true "Record ID"
// @Success 200 {object} moderation.UsageRecord "Record"
// @Failure 400 {object} map[string]interface{} "Invalid record_id"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Router /api/v1/moderation/records/{record_id} [get]
func (h *getRecordHandler) Handle(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("record_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record_id"})
	}

	record, err := h.finder.Find(c.UserContext(), recordID)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
		}
		h.logger.WithError(err).WithField("record_id", recordID.String()).Error("failed to get usage record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get record"})
	}
	return c.Status(fiber.StatusOK).JSON(record)
}
