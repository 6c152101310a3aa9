package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/sirupsen/logrus"
)

type DetectRequest struct {
	Text   string
	UserID string
	Client *moderation.ClientInfo
}

type DetectResult struct {
	Blocked    bool                        `json:"blocked"`
	Validation moderation.ValidationResult `json:"validation"`
	Language   string                      `json:"language,omitempty"`
}

//go:generate mockery --name=LanguageDetector --dir=. --output=./mocks --filename=language_detector_mock.go --case=underscore --with-expecter
type LanguageDetector interface {
	Detect(ctx context.Context, req DetectRequest) (*DetectResult, error)
}

type languageDetector struct {
	logger     *logrus.Logger
	validator  moderation.Validator
	translator domain.Translator
}

func NewLanguageDetector(
	logger *logrus.Logger,
	validator moderation.Validator,
	translator domain.Translator,
) LanguageDetector {
	return &languageDetector{
		logger:     logger,
		validator:  validator,
		translator: translator,
	}
}

func (d *languageDetector) Detect(ctx context.Context, req DetectRequest) (*DetectResult, error) {
	validation := d.validator.Validate(ctx, req.Text, moderation.Options{
		Context:  domainModeration.ContextLanguageDetection,
		Language: domain.AutoDetect,
		UserID:   req.UserID,
		Client:   req.Client,
	})
	if !validation.IsValid {
		return &DetectResult{Blocked: true, Validation: validation}, nil
	}

	start := time.Now()
	language, err := d.translator.DetectLanguage(ctx, req.Text)
	observeLatency(d.translator.Name(), "detect", start)
	if err != nil {
		d.logger.WithError(err).WithField("provider", d.translator.Name()).Error("language detection failed")
		return nil, fmt.Errorf("language detection failed: %w", err)
	}
	return &DetectResult{Validation: validation, Language: language}, nil
}
