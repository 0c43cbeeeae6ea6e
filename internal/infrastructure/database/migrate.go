package database

import (
	"fmt"
	"jobboard-http-service/internal/domain/models"
	Logger "jobboard-http-service/pkg/logger"

	"gorm.io/gorm"
)

// Models lists every table managed by the service
func Models() []interface{} {
	return []interface{}{
		&models.Admin{},
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.OperationLog{},
	}
}

// Migrate applies the schema according to mode.
// "auto" only adds tables, columns and indexes; "drop" rebuilds every table.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case "", "auto":
		Logger.Info("running standard migration: new tables and columns only")
	case "drop":
		Logger.Warning("running in drop mode: every table will be dropped and recreated")
		if err := db.Migrator().DropTable(Models()...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// the duplicate-apply guard depends on this index; fail loudly if the dialect skipped it
	if !db.Migrator().HasIndex(&models.Application{}, "idx_application_user_job") {
		return fmt.Errorf("unique index idx_application_user_job missing after migration")
	}

	Logger.Info("database migration completed")
	return nil
}
