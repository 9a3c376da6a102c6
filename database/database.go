package database

import (
	"fmt"

	"github.com/anayon/examhub/config"
	"github.com/anayon/examhub/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}

// Migrate runs auto-migration for all models and creates the partial unique
// index that enforces at most one real (non-practice) result per (user, exam).
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Group{},
		&model.Subject{},
		&model.Chapter{},
		&model.SubChapter{},
		&model.Question{},
		&model.Exam{},
		&model.ExamResult{},
	)
	if err != nil {
		return err
	}

	// Partial unique index; practice rows are exempt. The syntax works on
	// both Postgres and SQLite.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_exam_results_one_real_attempt
		 ON exam_results (user_id, exam_id) WHERE NOT is_practice`,
	).Error
}
