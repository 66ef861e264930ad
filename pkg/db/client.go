package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openmsig/msig-client/pkg/db/models"
)

func NewPostgresClient(databaseURL string) (*gorm.DB, error) {
	pg, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Auto Migrate the schema
	err = pg.AutoMigrate(
		&models.ActionRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return pg, nil
}
