package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"surveyhub/internal/config"
	logging "surveyhub/internal/logging"
	"surveyhub/internal/models"
)

var DB *gorm.DB

// Init opens the configured database, runs migrations and seeds the
// bootstrap admin. The sqlite driver is the default and creates the data
// file (and its directory) on first use.
func Init(log *zap.Logger) error {
	dbConf := config.Conf.Database

	// Create our custom GORM logger
	gormLog := logging.NewGormZapLogger(log)
	gormLog.LogLevel = gormlogger.Warn

	dialector, err := openDialector(dbConf)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
		// Surface constraint violations as gorm.ErrDuplicatedKey
		// regardless of driver.
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Database connection established successfully.",
		zap.String("driver", dbConf.Driver))

	if err := runMigrations(log); err != nil {
		return err
	}
	return seedAdmin(log)
}

func openDialector(dbConf config.DatabaseConfig) (gorm.Dialector, error) {
	switch dbConf.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(dbConf.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("could not create data directory: %w", err)
			}
		}
		// Foreign keys are off by default in sqlite.
		return sqlite.Open(dbConf.Path + "?_foreign_keys=on"), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", dbConf.Driver)
	}
}

func runMigrations(log *zap.Logger) error {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create composite indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Survey{},
		&models.Question{},
		&models.Response{},
		&models.Answer{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Info("Database migrations completed successfully.")

	// Display order is unique within a survey.
	positionIndex := `CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_survey_position ON questions (survey_id, position);`
	if err := DB.Exec(positionIndex).Error; err != nil {
		return fmt.Errorf("failed to create question position index: %w", err)
	}
	responseIndex := `CREATE INDEX IF NOT EXISTS idx_responses_survey ON responses (survey_id);`
	if err := DB.Exec(responseIndex).Error; err != nil {
		return fmt.Errorf("failed to create response survey index: %w", err)
	}
	log.Info("Custom indexes ensured successfully.")
	return nil
}

// seedAdmin lazily creates the bootstrap admin account if it is absent.
func seedAdmin(log *zap.Logger) error {
	bs := config.Conf.Bootstrap

	var admin models.User
	err := DB.Where("username = ?", bs.AdminUsername).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hashed, err := models.HashPassword(bs.AdminPassword)
	if err != nil {
		return err
	}
	admin = models.User{
		Username: bs.AdminUsername,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	log.Info("Bootstrap admin created", zap.String("username", bs.AdminUsername))
	return nil
}
