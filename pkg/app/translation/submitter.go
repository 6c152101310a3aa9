package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	UserID         string
	Client         *moderation.ClientInfo
}

// Result is either a translation or a block. A blocked result never carries
// translated text.
type Result struct {
	Blocked                bool                        `json:"blocked"`
	Validation             moderation.ValidationResult `json:"validation"`
	TranslatedText         string                      `json:"translated_text"`
	DetectedSourceLanguage string                      `json:"detected_source_language,omitempty"`
	Provider               string                      `json:"provider,omitempty"`
}

//go:generate mockery --name=Submitter --dir=. --output=./mocks --filename=submitter_mock.go --case=underscore --with-expecter
type Submitter interface {
	Submit(ctx context.Context, req Request) (*Result, error)
}

type submitter struct {
	logger     *logrus.Logger
	validator  moderation.Validator
	translator domain.Translator
}

func NewSubmitter(
	logger *logrus.Logger,
	validator moderation.Validator,
	translator domain.Translator,
) Submitter {
	return &submitter{
		logger:     logger,
		validator:  validator,
		translator: translator,
	}
}

func (s *submitter) Submit(ctx context.Context, req Request) (*Result, error) {
	return gateAndTranslate(ctx, s.logger, s.validator, s.translator, req, domainModeration.ContextTranslation)
}

func gateAndTranslate(
	ctx context.Context,
	logger *logrus.Logger,
	validator moderation.Validator,
	translator domain.Translator,
	req Request,
	submissionContext string,
) (*Result, error) {
	target := strings.TrimSpace(req.TargetLanguage)
	if target == "" {
		return nil, domain.ErrEmptyTarget
	}
	source := strings.TrimSpace(req.SourceLanguage)
	if source == "" {
		source = domain.AutoDetect
	}

	validation := validator.Validate(ctx, req.Text, moderation.Options{
		Context:  submissionContext,
		Language: source,
		UserID:   req.UserID,
		Client:   req.Client,
	})
	if !validation.IsValid {
		return &Result{Blocked: true, Validation: validation}, nil
	}

	start := time.Now()
	translated, err := translator.Translate(ctx, domain.Request{
		Text:           req.Text,
		SourceLanguage: source,
		TargetLanguage: target,
	})
	observeLatency(translator.Name(), "translate", start)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"provider": translator.Name(),
			"source":   source,
			"target":   target,
		}).Error("translation provider failed")
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	if translated == nil {
		return nil, domain.ErrNoTranslation
	}

	return &Result{
		Validation:             validation,
		TranslatedText:         translated.TranslatedText,
		DetectedSourceLanguage: translated.DetectedSourceLanguage,
		Provider:               translated.Provider,
	}, nil
}

func observeLatency(provider, operation string, start time.Time) {
	if !prometheus.Config.EnableLatency {
		return
	}
	prometheus.TranslationLatency.
		WithLabelValues(provider, operation).
		Observe(float64(time.Since(start).Milliseconds()))
}
