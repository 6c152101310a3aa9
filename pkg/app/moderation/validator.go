package moderation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Validator --dir=. --output=./mocks --filename=validator_mock.go --case=underscore --with-expecter
type Validator interface {
	Validate(ctx context.Context, text string, opts Options) ValidationResult
}

const DefaultMaxLength = 10000

type Reason string

const (
	ReasonEmpty                Reason = "empty"
	ReasonTooLong              Reason = "too_long"
	ReasonInappropriateContent Reason = "inappropriate_content"
)

const emptyMessage = "Please enter some text to translate."

var categoryMessages = map[domain.Category]string{
	domain.CategoryViolence:   "Your text contains violent or threatening language. Please revise it before continuing.",
	domain.CategoryTerrorism:  "Your text contains content related to terrorism or extremism, which is not allowed.",
	domain.CategoryHateSpeech: "Your text contains hate speech or discriminatory language. Please be respectful.",
	domain.CategoryDrugs:      "Your text contains references to illegal drugs, which are not allowed.",
	domain.CategorySexual:     "Your text contains sexual or explicit content, which is not allowed.",
	domain.CategoryProfanity:  "Your text contains inappropriate language. Please revise it before continuing.",
}

// MessageFor returns the user-facing message for a detected category,
// falling back to the generic profanity message.
func MessageFor(category domain.Category) string {
	if msg, ok := categoryMessages[category]; ok {
		return msg
	}
	return categoryMessages[domain.CategoryProfanity]
}

type ValidationResult struct {
	IsValid       bool            `json:"is_valid"`
	Reason        Reason          `json:"reason,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	DetectedWords []string        `json:"detected_words,omitempty"`
	Category      domain.Category `json:"category,omitempty"`
}

type ClientInfo struct {
	Browser string
	OS      string
	Device  string
	Locale  string
}

// Options carries the submission metadata. The zero value records violations.
type Options struct {
	Context          string
	Language         string
	UserID           string
	Client           *ClientInfo
	DisableRecording bool
}

type validator struct {
	logger     *logrus.Logger
	classifier *Classifier
	dispatcher Dispatcher
	maxLength  int
}

// NewValidator builds the validation gate. A nil dispatcher disables
// recording for every call.
func NewValidator(
	logger *logrus.Logger,
	classifier *Classifier,
	dispatcher Dispatcher,
	maxLength int,
) Validator {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &validator{
		logger:     logger,
		classifier: classifier,
		dispatcher: dispatcher,
		maxLength:  maxLength,
	}
}

func (v *validator) Validate(ctx context.Context, text string, opts Options) ValidationResult {
	if strings.TrimSpace(text) == "" {
		return v.reject(ReasonEmpty, emptyMessage)
	}

	if utf8.RuneCountInString(text) > v.maxLength {
		return v.reject(
			ReasonTooLong,
			fmt.Sprintf("Text is too long. Please keep it under %d characters.", v.maxLength),
		)
	}

	matches := v.classifier.Detect(text)
	category, found := TopCategory(matches)
	if !found {
		prometheus.ValidationsTotal.WithLabelValues("valid", "").Inc()
		return ValidationResult{IsValid: true}
	}

	detected := make([]string, 0, len(matches))
	for _, m := range matches {
		detected = append(detected, m.Term)
	}

	submissionContext := opts.Context
	if submissionContext == "" {
		submissionContext = domain.ContextGeneral
	}

	result := v.reject(ReasonInappropriateContent, MessageFor(category))
	result.DetectedWords = detected
	result.Category = category

	prometheus.ViolationsTotal.WithLabelValues(string(category), submissionContext).Inc()
	v.logger.WithFields(logrus.Fields{
		"category":       category,
		"context":        submissionContext,
		"language":       opts.Language,
		"user_id":        opts.UserID,
		"detected_count": len(detected),
	}).Warn("inappropriate content detected")

	if !opts.DisableRecording && v.dispatcher != nil {
		record := domain.NewUsageRecord(text, submissionContext, opts.Language, detected, category, opts.UserID)
		if opts.Client != nil {
			record.Browser = opts.Client.Browser
			record.OS = opts.Client.OS
			record.Device = opts.Client.Device
		}
		v.dispatcher.Dispatch(record)
	}

	return result
}

func (v *validator) reject(reason Reason, message string) ValidationResult {
	prometheus.ValidationsTotal.WithLabelValues("invalid", string(reason)).Inc()
	return ValidationResult{
		IsValid:      false,
		Reason:       reason,
		ErrorMessage: message,
	}
}
