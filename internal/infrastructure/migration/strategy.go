package migration

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"bugtrail/internal/shared/logger"
)

// Strategy is a way of bringing the schema up to date.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GooseStrategy runs versioned SQL scripts with goose.
type GooseStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseStrategy(scriptsPath string) *GooseStrategy {
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// sqlDB extracts the raw connection and pins the goose dialect.
func (s *GooseStrategy) sqlDB(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect("mysql"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("applying pending migrations",
		"scripts_path", s.scriptsPath,
		"from_version", currentVersion)

	if err := goose.Up(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migrations applied",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}

	s.logger.Infow("rolling back migrations", "steps", steps)

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsPath); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := s.sqlDB(db)
	if err != nil {
		return err
	}

	if err := goose.Status(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

func (s *GooseStrategy) Create(name string) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created", "name", name)
	return nil
}
