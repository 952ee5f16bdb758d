package database

import (
	"context"
	"errors"
	"fmt"

	"faktur-backend/config"

	"go.uber.org/zap"
)

// KV is the durable key-value store the invoice collection lives in. Values
// are opaque strings; a missing key is ("", false, nil), not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// ErrUnavailable is returned by a store that cannot be reached at all.
var ErrUnavailable = errors.New("kv store unavailable")

// Open builds the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (KV, error) {
	log := logger.Named("kv")
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Info("using in-memory store")
		return NewMemoryKV(), nil
	case config.DriverFile:
		log.Info("using file store", zap.String("dir", cfg.StoreDir))
		return NewFileKV(cfg.StoreDir)
	case config.DriverRedis:
		log.Info("using redis store", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		return NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.DriverPostgres, config.DriverMySQL:
		db, err := Connect(cfg.StoreDriver, cfg.DbDsn)
		if err != nil {
			return nil, err
		}
		log.Info("using sql store", zap.String("driver", cfg.StoreDriver))
		return NewSQLKV(db)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// CloseKV closes kv and logs the outcome.
func CloseKV(name string, kv KV, logger *zap.Logger) {
	if kv == nil {
		logger.Info("nothing to close", zap.String("store", name))
		return
	}
	if err := kv.Close(); err != nil {
		logger.Warn("failed to close store", zap.String("store", name), zap.Error(err))
		return
	}
	logger.Info("store closed", zap.String("store", name))
}
