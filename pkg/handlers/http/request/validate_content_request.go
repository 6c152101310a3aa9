package request

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxContextLength bounds the free-form submission context stored on records.
const MaxContextLength = 64

type ValidateContentRequest struct {
	Text string `json:"text"`
	// Free-form submission context, at most 64 characters. Defaults to general.
	Context  string `json:"context,omitempty"`
	Language string `json:"language,omitempty"`
	// RecordProfanity defaults to true when omitted.
	RecordProfanity *bool `json:"record_profanity,omitempty"`
}

// Validate trims the context and rejects one that is too long or carries
// control characters. Any other value is accepted as is.
func (r *ValidateContentRequest) Validate() error {
	r.Context = strings.TrimSpace(r.Context)
	if n := utf8.RuneCountInString(r.Context); n > MaxContextLength {
		return fmt.Errorf("context must be at most %d characters, got %d", MaxContextLength, n)
	}
	if strings.IndexFunc(r.Context, unicode.IsControl) >= 0 {
		return errors.New("context must not contain control characters")
	}
	return nil
}

func (r *ValidateContentRequest) ShouldRecord() bool {
	return r.RecordProfanity == nil || *r.RecordProfanity
}
