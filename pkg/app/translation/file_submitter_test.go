package translation_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	moderationMocks "github.com/PolyglAI/PolyglAI/pkg/app/moderation/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	translatorMocks "github.com/PolyglAI/PolyglAI/pkg/domain/translation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	text, err := translation.DecodeText([]byte("\xEF\xBB\xBFhola mundo"))
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", text)

	_, err = translation.DecodeText(nil)
	assert.ErrorIs(t, err, translation.ErrEmptyFile)

	_, err = translation.DecodeText([]byte{0x89, 'P', 'N', 'G', 0x00, 0x01})
	assert.ErrorIs(t, err, translation.ErrUnsupportedFile)

	_, err = translation.DecodeText(bytes.Repeat([]byte("a"), translation.MaxFileSize+1))
	assert.ErrorIs(t, err, translation.ErrFileTooLarge)
}

func TestFileSubmitter_Content(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	validator.On("Validate", mock.Anything, "hello from a file", mock.MatchedBy(func(o moderation.Options) bool {
		return o.Context == domainModeration.ContextFileUpload
	})).Return(moderation.ValidationResult{IsValid: true}).Once()
	translator.On("Translate", mock.Anything, domain.Request{
		Text:           "hello from a file",
		SourceLanguage: domain.AutoDetect,
		TargetLanguage: "de",
	}).Return(&domain.Translation{TranslatedText: "hallo aus einer Datei", Provider: "google"}, nil).Once()
	translator.On("Name").Return("google")

	s := translation.NewFileSubmitter(newTestLogger(), validator, translator)
	result, err := s.Submit(context.Background(), translation.FileRequest{
		FileName:       "notes.txt",
		Content:        []byte("hello from a file"),
		TargetLanguage: "de",
	})

	require.NoError(t, err)
	assert.Equal(t, "hallo aus einer Datei", result.TranslatedText)
}

func TestFileSubmitter_ExtractedTextBlocked(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	validator.On("Validate", mock.Anything, "kill yourself", mock.MatchedBy(func(o moderation.Options) bool {
		return o.Context == domainModeration.ContextFileUpload
	})).Return(moderation.ValidationResult{
		IsValid:       false,
		Reason:        moderation.ReasonInappropriateContent,
		ErrorMessage:  "violent",
		DetectedWords: []string{"kill yourself"},
		Category:      domainModeration.CategoryViolence,
	}).Once()

	s := translation.NewFileSubmitter(newTestLogger(), validator, translator)
	result, err := s.Submit(context.Background(), translation.FileRequest{
		FileName:       "scan.png",
		Content:        []byte{0x89, 'P', 'N', 'G'},
		ExtractedText:  "kill yourself",
		TargetLanguage: "es",
	})

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	assert.Empty(t, result.TranslatedText)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
}

func TestFileSubmitter_BinaryRejected(t *testing.T) {
	validator := moderationMocks.NewValidator(t)
	translator := translatorMocks.NewTranslator(t)

	s := translation.NewFileSubmitter(newTestLogger(), validator, translator)
	_, err := s.Submit(context.Background(), translation.FileRequest{
		FileName:       "scan.png",
		Content:        []byte{0x89, 'P', 'N', 'G', 0x00},
		TargetLanguage: "es",
	})

	assert.ErrorIs(t, err, translation.ErrUnsupportedFile)
	validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}
