package providers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/valyala/fastjson"
)

const TranslationSystemPrompt = "You are a translation engine for language learners. " +
	"Translate faithfully, keep the register of the original and never add commentary."

var (
	translationInstructions = []string{
		`Reply with a single JSON object: {"detected_source_language": "<ISO 639-1 code>", "translated_text": "<translation>"}.`,
		"Do not wrap the JSON in markdown.",
		"Preserve line breaks of the original text.",
	}
	detectionInstructions = []string{
		"Reply with the ISO 639-1 code of the language of the text and nothing else.",
	}

	languageCode = regexp.MustCompile(`^[a-z]{2,3}(-[a-zA-Z]{2,4})?$`)

	ErrInvalidLanguageCode = errors.New("provider returned an invalid language code")
)

func TranslationPrompt(req translation.Request) string {
	var b strings.Builder
	b.WriteString(FormatInstructions(translationInstructions))
	if req.SourceLanguage == "" || req.SourceLanguage == translation.AutoDetect {
		b.WriteString("Detect the source language and translate")
	} else {
		fmt.Fprintf(&b, "Translate from %s", req.SourceLanguage)
	}
	fmt.Fprintf(&b, " to %s.\n\n[Text]\n%s", req.TargetLanguage, req.Text)
	return b.String()
}

func DetectionPrompt(text string) string {
	return FormatInstructions(detectionInstructions) + "\n[Text]\n" + text
}

// ParseTranslation reads the JSON reply requested by TranslationPrompt. A
// reply that is not JSON is taken verbatim as the translation.
func ParseTranslation(raw string, req translation.Request) (translatedText, detected string) {
	raw = StripCodeFence(raw)
	detected = req.SourceLanguage
	if detected == translation.AutoDetect {
		detected = ""
	}

	v, err := fastjson.Parse(raw)
	if err != nil || v.Type() != fastjson.TypeObject {
		return raw, detected
	}
	translatedText = strings.TrimSpace(string(v.GetStringBytes("translated_text")))
	if lang, err := NormalizeLanguageCode(string(v.GetStringBytes("detected_source_language"))); err == nil && detected == "" {
		detected = lang
	}
	return translatedText, detected
}

func NormalizeLanguageCode(raw string) (string, error) {
	code := strings.Trim(strings.TrimSpace(raw), `."'`)
	if i := strings.IndexAny(code, " \n\t"); i >= 0 {
		code = code[:i]
	}
	code = strings.ReplaceAll(code, "_", "-")
	if parts := strings.SplitN(code, "-", 2); len(parts) == 2 {
		code = strings.ToLower(parts[0]) + "-" + parts[1]
	} else {
		code = strings.ToLower(code)
	}
	if !languageCode.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguageCode, raw)
	}
	return code, nil
}
