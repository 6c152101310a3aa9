package response

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

type TranslationOutput struct {
	TranslatedText         string `json:"translated_text"`
	DetectedSourceLanguage string `json:"detected_source_language,omitempty"`
	Provider               string `json:"provider"`
}

type DetectLanguageOutput struct {
	Language string `json:"language"`
}

// BlockedOutput tells the dashboard to clear its output and show the
// confirmation dialog with ErrorMessage.
type BlockedOutput struct {
	Blocked       bool              `json:"blocked"`
	ShowDialog    bool              `json:"show_dialog"`
	Reason        moderation.Reason `json:"reason"`
	ErrorMessage  string            `json:"error_message"`
	DetectedWords []string          `json:"detected_words,omitempty"`
	Category      domain.Category   `json:"category,omitempty"`
}

func NewBlockedOutput(result moderation.ValidationResult) BlockedOutput {
	return BlockedOutput{
		Blocked:       true,
		ShowDialog:    true,
		Reason:        result.Reason,
		ErrorMessage:  result.ErrorMessage,
		DetectedWords: result.DetectedWords,
		Category:      result.Category,
	}
}
