package migration

import (
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.ProjectSupervisorModel{},
		&models.TicketModel{},
		&models.TicketSequenceModel{},
		&models.CommentModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the struct
// definitions. Development only; versioned scripts own the other environments.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
