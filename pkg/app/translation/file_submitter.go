package translation

import (
	"bytes"
	"context"
	"errors"
	"unicode/utf8"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/sirupsen/logrus"
)

const MaxFileSize = 1 << 20

var (
	ErrUnsupportedFile = errors.New("file is not UTF-8 text")
	ErrFileTooLarge    = errors.New("file exceeds the 1 MiB upload limit")
	ErrEmptyFile       = errors.New("file has no content")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileRequest carries either raw uploaded bytes or text already extracted
// on the client (OCR). ExtractedText wins when both are present.
type FileRequest struct {
	FileName       string
	Content        []byte
	ExtractedText  string
	SourceLanguage string
	TargetLanguage string
	UserID         string
	Client         *moderation.ClientInfo
}

//go:generate mockery --name=FileSubmitter --dir=. --output=./mocks --filename=file_submitter_mock.go --case=underscore --with-expecter
type FileSubmitter interface {
	Submit(ctx context.Context, req FileRequest) (*Result, error)
}

type fileSubmitter struct {
	logger     *logrus.Logger
	validator  moderation.Validator
	translator domain.Translator
}

func NewFileSubmitter(
	logger *logrus.Logger,
	validator moderation.Validator,
	translator domain.Translator,
) FileSubmitter {
	return &fileSubmitter{
		logger:     logger,
		validator:  validator,
		translator: translator,
	}
}

func (s *fileSubmitter) Submit(ctx context.Context, req FileRequest) (*Result, error) {
	text := req.ExtractedText
	if text == "" {
		decoded, err := DecodeText(req.Content)
		if err != nil {
			s.logger.WithError(err).WithField("file_name", req.FileName).Debug("rejected uploaded file")
			return nil, err
		}
		text = decoded
	}

	return gateAndTranslate(ctx, s.logger, s.validator, s.translator, Request{
		Text:           text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		UserID:         req.UserID,
		Client:         req.Client,
	}, domainModeration.ContextFileUpload)
}

// DecodeText turns an uploaded file into text. Only UTF-8 without NUL bytes
// is accepted; a leading byte order mark is dropped.
func DecodeText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyFile
	}
	if len(content) > MaxFileSize {
		return "", ErrFileTooLarge
	}
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0 {
		return "", ErrUnsupportedFile
	}
	return string(content), nil
}
