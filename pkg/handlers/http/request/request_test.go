package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContentRequest(t *testing.T) {
	r := ValidateContentRequest{Text: "hi"}
	assert.NoError(t, r.Validate())
	assert.True(t, r.ShouldRecord())

	r.Context = "file_upload"
	assert.NoError(t, r.Validate())

	r.Context = "  chat  "
	assert.NoError(t, r.Validate())
	assert.Equal(t, "chat", r.Context)

	r.Context = strings.Repeat("c", MaxContextLength+1)
	assert.ErrorContains(t, r.Validate(), "at most")

	r.Context = "chat\nroom"
	assert.ErrorContains(t, r.Validate(), "control characters")

	off := false
	r = ValidateContentRequest{RecordProfanity: &off}
	assert.False(t, r.ShouldRecord())
}

func TestTranslationRequest_Validate(t *testing.T) {
	assert.Error(t, (&TranslationRequest{Text: "hola"}).Validate())
	assert.Error(t, (&TranslationRequest{Text: "hola", TargetLanguage: "  "}).Validate())
	assert.NoError(t, (&TranslationRequest{Text: "hola", TargetLanguage: "en"}).Validate())

	assert.Error(t, (&FileTranslationRequest{ExtractedText: "hola"}).Validate())
	assert.NoError(t, (&FileTranslationRequest{ExtractedText: "hola", TargetLanguage: "en"}).Validate())
}
