package http

import (
	"io"
	"strings"

	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const fileFormField = "file"

type createFileTranslationHandler struct {
	logger    *logrus.Logger
	submitter translation.FileSubmitter
}

func NewCreateFileTranslationHandler(logger *logrus.Logger, submitter translation.FileSubmitter) Handler {
	return &createFileTranslationHandler{
		logger:    logger,
		submitter: submitter,
	}
}

// Handle @Summary Translate an uploaded file
// @Description Accepts a multipart text file (field "file") or JSON with text extracted on the client. The text is validated before translation.
// @Tags Translations
// @Accept json,mpfd
// @Produce json
// @Param X-User-ID header string false "Learner id"
// @Param file formData file false "UTF-8 text file"
// @Param target_language formData string false "Target language"
// @Param request body request.FileTranslationRequest false "Extracted text"
// @Success 200 {object} response.TranslationOutput "Translation"
// @Failure 400 {object} map[string]interface{} "Invalid request or unsupported file"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 422 {object} response.BlockedOutput "Blocked by moderation"
// @Failure 502 {object} map[string]interface{} "Translation provider failure"
// @Router /api/v1/files/translations [post]
func (h *createFileTranslationHandler) Handle(c *fiber.Ctx) error {
	userID, client := caller(c)

	var (
		fileReq translation.FileRequest
		reqErr  *fiber.Error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fileReq, reqErr = h.fromMultipart(c)
	} else {
		fileReq, reqErr = h.fromJSON(c)
	}
	if reqErr != nil {
		return c.Status(reqErr.Code).JSON(fiber.Map{"error": reqErr.Message})
	}
	fileReq.UserID = userID
	fileReq.Client = client

	result, err := h.submitter.Submit(c.UserContext(), fileReq)
	if err != nil {
		return translationError(c, h.logger, err)
	}
	return writeTranslationResult(c, result)
}

func (h *createFileTranslationHandler) fromJSON(c *fiber.Ctx) (translation.FileRequest, *fiber.Error) {
	var req request.FileTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse file translation request")
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return translation.FileRequest{
		FileName:       req.FileName,
		ExtractedText:  req.ExtractedText,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}, nil
}

func (h *createFileTranslationHandler) fromMultipart(c *fiber.Ctx) (translation.FileRequest, *fiber.Error) {
	header, err := c.FormFile(fileFormField)
	if err != nil {
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if header.Size > translation.MaxFileSize {
		return translation.FileRequest{}, fiber.NewError(fiber.StatusRequestEntityTooLarge, translation.ErrFileTooLarge.Error())
	}
	target := strings.TrimSpace(c.FormValue("target_language"))
	if target == "" {
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, "target_language is required")
	}

	file, err := header.Open()
	if err != nil {
		h.logger.WithError(err).Error("failed to open uploaded file")
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, "failed to read file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, translation.MaxFileSize+1))
	if err != nil {
		h.logger.WithError(err).Error("failed to read uploaded file")
		return translation.FileRequest{}, fiber.NewError(fiber.StatusBadRequest, "failed to read file")
	}

	return translation.FileRequest{
		FileName:       header.Filename,
		Content:        content,
		SourceLanguage: c.FormValue("source_language"),
		TargetLanguage: target,
	}, nil
}
