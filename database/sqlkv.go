package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"faktur-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLKV keeps keys as rows of kv_entries. It is a key-value table, not a
// relational invoice schema: the whole collection stays one JSON value.
type SQLKV struct {
	db *gorm.DB
}

var _ KV = (*SQLKV)(nil)

func NewSQLKV(db *gorm.DB) (*SQLKV, error) {
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("kv automigrate failed: %w", err)
	}
	return &SQLKV{db: db}, nil
}

func (s *SQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("name = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(entry.Value), true, nil
}

func (s *SQLKV) Set(ctx context.Context, key string, value string) error {
	entry := models.KVEntry{
		Name:      key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *SQLKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
