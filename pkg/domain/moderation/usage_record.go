package moderation

import (
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContextTranslation       = "translation"
	ContextFileUpload        = "file_upload"
	ContextLanguageDetection = "language_detection"
	ContextGeneral           = "general"
)

// UsageRecord is one persisted occurrence of disallowed content. Records are
// append-only: nothing in the service updates one after it is created.
type UsageRecord struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Text          string            `json:"text" gorm:"type:text;not null"`
	Context       string            `json:"context" gorm:"type:text;not null"`
	Language      string            `json:"language" gorm:"type:text"`
	DetectedWords types.StringArray `json:"detected_words" gorm:"type:text[]"`
	Category      Category          `json:"category" gorm:"type:text"`
	UserID        string            `json:"user_id,omitempty" gorm:"type:text;index"`
	Browser       string            `json:"browser,omitempty" gorm:"type:text"`
	OS            string            `json:"os,omitempty" gorm:"column:os;type:text"`
	Device        string            `json:"device,omitempty" gorm:"type:text"`
	CreatedAt     time.Time         `json:"timestamp" gorm:"index"`
}

func NewUsageRecord(text, context, language string, detected []string, category Category, userID string) *UsageRecord {
	words := make(types.StringArray, len(detected))
	copy(words, detected)
	return &UsageRecord{
		ID:            uuid.New(),
		Text:          text,
		Context:       context,
		Language:      language,
		DetectedWords: words,
		Category:      category,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
	}
}

func (r *UsageRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (r *UsageRecord) TableName() string {
	return "profanity_usage"
}
