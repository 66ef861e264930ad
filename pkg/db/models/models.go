package models

import (
	"gorm.io/gorm"
)

// ActionRecord is the audit row written for every gateway action,
// successful or not. SessionID ties the row to the sync session that
// issued the action.
type ActionRecord struct {
	gorm.Model
	SessionID   string  `gorm:"index;type:varchar(255)"`
	Action      string  `gorm:"type:varchar(64)"`
	TxID        *uint64 `gorm:"type:bigint"`
	TxHash      string  `gorm:"type:varchar(255)"`
	Status      string  `gorm:"type:varchar(32)"`
	Error       string  `gorm:"type:text"`
	BlockNumber uint64  `gorm:"type:bigint"`
	GasUsed     uint64  `gorm:"type:bigint"`
}
