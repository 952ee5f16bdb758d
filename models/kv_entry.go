package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one key of the SQL-backed key-value store. The invoice
// collection lives in a single row as a JSON array.
type KVEntry struct {
	Name      string         `json:"name" gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
