package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"faktur-backend/database"
	"faktur-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the persistence contract handlers depend on. Failures are
// reported as false/not-found and never returned as errors.
type Repository interface {
	List(ctx context.Context) []models.StoredInvoice
	Save(ctx context.Context, inv models.Invoice) bool
	Get(ctx context.Context, id string) (models.StoredInvoice, bool)
	Delete(ctx context.Context, id string) bool
}

// InvoiceStore keeps every StoredInvoice as one JSON array under a single
// collection key of a KV backend.
type InvoiceStore struct {
	mu     sync.Mutex // serializes read-modify-write of the collection
	kv     database.KV
	key    string
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

var _ Repository = (*InvoiceStore)(nil)

type Option func(*InvoiceStore)

// WithClock replaces time.Now for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *InvoiceStore) { s.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *InvoiceStore) { s.newID = gen }
}

func NewInvoiceStore(kv database.KV, key string, logger *zap.Logger, opts ...Option) *InvoiceStore {
	s := &InvoiceStore{
		kv:     kv,
		key:    key,
		logger: logger.Named("invoice_store").With(zap.String("key", key)),
		now:    time.Now,
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a time-ordered random id (UUIDv7: millisecond timestamp
// followed by random bits).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *InvoiceStore) load(ctx context.Context) ([]models.StoredInvoice, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if !ok || raw == "" {
		return []models.StoredInvoice{}, nil
	}
	var records []models.StoredInvoice
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if records == nil {
		records = []models.StoredInvoice{}
	}
	return records, nil
}

func (s *InvoiceStore) write(ctx context.Context, records []models.StoredInvoice) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// List returns the records in stored order; an unreadable store lists as empty.
func (s *InvoiceStore) List(ctx context.Context) []models.StoredInvoice {
	records, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("could not load invoices", zap.Error(err))
		return []models.StoredInvoice{}
	}
	return records
}

// Save upserts by invoice number: a known number replaces the snapshot and
// refreshes updatedAt, a new number appends a record with a fresh id.
func (s *InvoiceStore) Save(ctx context.Context, inv models.Invoice) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while saving invoice", zap.Any("panic", r))
			ok = false
		}
	}()

	records, err := s.load(ctx)
	if err != nil {
		s.logger.Error("could not save invoice", zap.String("number", inv.Number), zap.Error(err))
		return false
	}

	now := s.now().UTC()
	snapshot := inv.Clone()
	updated := make([]models.StoredInvoice, len(records), len(records)+1)
	copy(updated, records)

	found := false
	for i := range updated {
		if updated[i].Invoice.Number != inv.Number {
			continue
		}
		// updatedAt must move forward even if the clock did not.
		if !now.After(updated[i].UpdatedAt) {
			now = updated[i].UpdatedAt.Add(time.Millisecond)
		}
		updated[i].Invoice = snapshot
		updated[i].UpdatedAt = now
		found = true
		break
	}
	if !found {
		updated = append(updated, models.StoredInvoice{
			ID:        s.newID(),
			Invoice:   snapshot,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.write(ctx, updated); err != nil {
		s.logger.Error("could not save invoice", zap.String("number", inv.Number), zap.Error(err))
		return false
	}
	s.logger.Debug("invoice saved", zap.String("number", inv.Number), zap.Bool("updated", found))
	return true
}

func (s *InvoiceStore) Get(ctx context.Context, id string) (models.StoredInvoice, bool) {
	records, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("could not load invoice", zap.String("id", id), zap.Error(err))
		return models.StoredInvoice{}, false
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.StoredInvoice{}, false
}

// Delete removes the record with id. Deleting an unknown id succeeds
// without touching the store.
func (s *InvoiceStore) Delete(ctx context.Context, id string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while deleting invoice", zap.Any("panic", r))
			ok = false
		}
	}()

	records, err := s.load(ctx)
	if err != nil {
		s.logger.Error("could not delete invoice", zap.String("id", id), zap.Error(err))
		return false
	}
	kept := make([]models.StoredInvoice, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return true
	}
	if err := s.write(ctx, kept); err != nil {
		s.logger.Error("could not delete invoice", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
