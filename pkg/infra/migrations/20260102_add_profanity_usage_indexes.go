package migrations

import (
	"github.com/PolyglAI/PolyglAI/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260102_add_profanity_usage_indexes",
		Name: "Index profanity_usage by time, user and category",

		Up: func(db *gorm.DB) error {
			for _, stmt := range []string{
				`CREATE INDEX IF NOT EXISTS idx_profanity_usage_created_at ON profanity_usage (created_at DESC);`,
				`CREATE INDEX IF NOT EXISTS idx_profanity_usage_user_id ON profanity_usage (user_id, created_at DESC) WHERE user_id IS NOT NULL AND user_id <> '';`,
				`CREATE INDEX IF NOT EXISTS idx_profanity_usage_category ON profanity_usage (category);`,
			} {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},

		Down: func(db *gorm.DB) error {
			for _, idx := range []string{
				"idx_profanity_usage_created_at",
				"idx_profanity_usage_user_id",
				"idx_profanity_usage_category",
			} {
				if err := db.Exec("DROP INDEX IF EXISTS " + idx + ";").Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
