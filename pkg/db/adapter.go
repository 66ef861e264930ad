package db

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openmsig/msig-client/pkg/db/models"
)

// DatabaseAdapter persists the gateway's action audit trail.
type DatabaseAdapter struct {
	PostgresClient *gorm.DB
}

func NewDatabaseAdapter(databaseURL string) (*DatabaseAdapter, error) {
	pg, err := NewPostgresClient(databaseURL)
	if err != nil {
		return nil, err
	}
	return &DatabaseAdapter{PostgresClient: pg}, nil
}

// RecordAction appends one audit row. Persistence failures are logged
// and returned but never block the action itself; the caller decides
// whether to care.
func (da *DatabaseAdapter) RecordAction(record *models.ActionRecord) error {
	result := da.PostgresClient.Create(record)
	if result.Error != nil {
		log.Error().Err(result.Error).
			Str("action", record.Action).
			Str("sessionId", record.SessionID).
			Msg("[DatabaseAdapter] [RecordAction] failed to persist action record")
		return fmt.Errorf("failed to persist action record: %w", result.Error)
	}
	return nil
}

// FindActionRecords returns the most recent audit rows for a session,
// newest first.
func (da *DatabaseAdapter) FindActionRecords(sessionID string, limit int) ([]models.ActionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []models.ActionRecord
	result := da.PostgresClient.
		Where("session_id = ?", sessionID).
		Order("created_at desc").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query action records: %w", result.Error)
	}
	return records, nil
}
