package request

import (
	"errors"
	"strings"
)

type TranslationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language"`
}

func (r *TranslationRequest) Validate() error {
	if strings.TrimSpace(r.TargetLanguage) == "" {
		return errors.New("target_language is required")
	}
	return nil
}

// FileTranslationRequest is the JSON form of a file submission, used when the
// dashboard already extracted the text (OCR).
type FileTranslationRequest struct {
	FileName       string `json:"file_name"`
	ExtractedText  string `json:"extracted_text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language"`
}

func (r *FileTranslationRequest) Validate() error {
	if strings.TrimSpace(r.TargetLanguage) == "" {
		return errors.New("target_language is required")
	}
	return nil
}

type DetectLanguageRequest struct {
	Text string `json:"text"`
}
