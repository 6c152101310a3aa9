package translation

import (
	"context"
	"errors"
)

const AutoDetect = "auto"

var (
	ErrEmptyTarget   = errors.New("target language is required")
	ErrNoTranslation = errors.New("provider returned no translation")
)

type Request struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language"`
}

type Translation struct {
	TranslatedText         string `json:"translated_text"`
	DetectedSourceLanguage string `json:"detected_source_language,omitempty"`
	Provider               string `json:"provider"`
}

//go:generate mockery --name=Translator --dir=. --output=./mocks --filename=translator_mock.go --case=underscore --with-expecter
type Translator interface {
	Translate(ctx context.Context, req Request) (*Translation, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
	Name() string
}
