package translation_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	moderationMocks "github.com/PolyglAI/PolyglAI/pkg/app/moderation/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	translatorMocks "github.com/PolyglAI/PolyglAI/pkg/domain/translation/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var blocked = moderation.ValidationResult{
	IsValid:       false,
	Reason:        moderation.ReasonInappropriateContent,
	ErrorMessage:  "Your text contains inappropriate language.",
	DetectedWords: []string{"fuck"},
	Category:      domainModeration.CategoryProfanity,
}

func TestSubmitter_Valid(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)
	client := &moderation.ClientInfo{Browser: "Firefox"}

	validator.On("Validate", mock.Anything, "Good morning", moderation.Options{
		Context:  domainModeration.ContextTranslation,
		Language: "en",
		UserID:   "user-1",
		Client:   client,
	}).Return(moderation.ValidationResult{IsValid: true}).Once()
	translator.On("Translate", mock.Anything, domain.Request{
		Text:           "Good morning",
		SourceLanguage: "en",
		TargetLanguage: "es",
	}).Return(&domain.Translation{TranslatedText: "Buenos días", Provider: "google"}, nil).Once()
	translator.On("Name").Return("google")

	s := translation.NewSubmitter(newTestLogger(), validator, translator)
	result, err := s.Submit(context.Background(), translation.Request{
		Text:           "Good morning",
		SourceLanguage: "en",
		TargetLanguage: "es",
		UserID:         "user-1",
		Client:         client,
	})

	require.NoError(t, err)
	assert.False(t, result.Blocked)
	assert.Equal(t, "Buenos días", result.TranslatedText)
	assert.Equal(t, "google", result.Provider)
}

func TestSubmitter_Blocked_DoesNotTranslate(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	validator.On("Validate", mock.Anything, "fuck", mock.MatchedBy(func(o moderation.Options) bool {
		return o.Context == domainModeration.ContextTranslation && o.Language == domain.AutoDetect
	})).Return(blocked).Once()

	s := translation.NewSubmitter(newTestLogger(), validator, translator)
	result, err := s.Submit(context.Background(), translation.Request{Text: "fuck", TargetLanguage: "es"})

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	assert.Empty(t, result.TranslatedText)
	assert.Equal(t, blocked, result.Validation)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
}

func TestSubmitter_MissingTarget(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	s := translation.NewSubmitter(newTestLogger(), validator, translator)
	_, err := s.Submit(context.Background(), translation.Request{Text: "hello", TargetLanguage: " "})

	assert.ErrorIs(t, err, domain.ErrEmptyTarget)
	validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitter_ProviderError(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)
	providerErr := errors.New("quota exceeded")

	validator.On("Validate", mock.Anything, "hello", mock.Anything).
		Return(moderation.ValidationResult{IsValid: true}).Once()
	translator.On("Translate", mock.Anything, mock.Anything).Return(nil, providerErr).Once()
	translator.On("Name").Return("google")

	s := translation.NewSubmitter(newTestLogger(), validator, translator)
	result, err := s.Submit(context.Background(), translation.Request{Text: "hello", TargetLanguage: "fr"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, providerErr)
}

func TestLanguageDetector(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	validator.On("Validate", mock.Anything, "bonjour", mock.MatchedBy(func(o moderation.Options) bool {
		return o.Context == domainModeration.ContextLanguageDetection
	})).Return(moderation.ValidationResult{IsValid: true}).Once()
	translator.On("DetectLanguage", mock.Anything, "bonjour").Return("fr", nil).Once()
	translator.On("Name").Return("google")

	d := translation.NewLanguageDetector(newTestLogger(), validator, translator)
	result, err := d.Detect(context.Background(), translation.DetectRequest{Text: "bonjour"})

	require.NoError(t, err)
	assert.False(t, result.Blocked)
	assert.Equal(t, "fr", result.Language)
}

func TestLanguageDetector_Blocked(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	validator.On("Validate", mock.Anything, "fuck", mock.Anything).Return(blocked).Once()

	d := translation.NewLanguageDetector(newTestLogger(), validator, translator)
	result, err := d.Detect(context.Background(), translation.DetectRequest{Text: "fuck"})

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	assert.Empty(t, result.Language)
	translator.AssertNotCalled(t, "DetectLanguage", mock.Anything, mock.Anything)
}
