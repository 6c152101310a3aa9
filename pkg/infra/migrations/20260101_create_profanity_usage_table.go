package migrations

import (
	"github.com/PolyglAI/PolyglAI/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_create_profanity_usage_table",
		Name: "Create profanity_usage table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS profanity_usage (
					id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					text           TEXT NOT NULL,
					context        TEXT NOT NULL DEFAULT 'general',
					language       TEXT,
					detected_words TEXT[] NOT NULL DEFAULT '{}',
					category       TEXT,
					user_id        TEXT,
					browser        TEXT,
					os             TEXT,
					device         TEXT,
					created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS profanity_usage;`).Error
		},
	})
}
