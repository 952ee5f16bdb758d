package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"faktur-backend/database"
	"faktur-backend/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	maxIdempotencyKey = 128
	idempotencyPrefix = "idem-"
	releasedRecord    = "null"
)

// Idempotency replays the stored response of a mutating request that
// carries an Idempotency-Key already seen with the same method, path and
// body. Only 2xx responses are kept; a failed request releases its key so
// the client can retry.
func Idempotency(kv database.KV, log *zap.Logger) fiber.Handler {
	var mu sync.Mutex // serializes check-and-reserve within this process

	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get(IdempotencyHeader))
		if key == "" {
			return c.Next()
		}
		if len(key) > maxIdempotencyKey {
			return fiber.NewError(fiber.StatusBadRequest, "Idempotency-Key too long")
		}

		path := c.OriginalURL()
		h := sha256.New()
		h.Write([]byte(method))
		h.Write([]byte{'\n'})
		h.Write([]byte(path))
		h.Write([]byte{'\n'})
		h.Write(c.Body())
		reqHash := hex.EncodeToString(h.Sum(nil))

		// keys end up in file names for the file backend
		sum := sha256.Sum256([]byte(key))
		storeKey := idempotencyPrefix + hex.EncodeToString(sum[:])
		ctx := c.UserContext()

		// ---- Phase 1: look up or reserve the key
		mu.Lock()
		var existing models.IdempotencyRecord
		raw, found, err := kv.Get(ctx, storeKey)
		if err != nil {
			mu.Unlock()
			log.Warn("idempotency lookup failed", zap.Error(err))
			return fiber.NewError(fiber.StatusServiceUnavailable, "idempotency lookup failed")
		}
		if found {
			// a released key holds "null" and decodes to an empty record
			if err := json.Unmarshal([]byte(raw), &existing); err != nil || existing.Key == "" {
				found = false
			}
		}

		if found {
			mu.Unlock()
			if existing.RequestHash != reqHash {
				return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
			}
			if !existing.Completed() {
				return fiber.NewError(fiber.StatusConflict, "request with this Idempotency-Key is in progress")
			}
			if existing.ContentType != "" {
				c.Set(fiber.HeaderContentType, existing.ContentType)
			}
			return c.Status(existing.ResponseStatus).Send(existing.ResponseBody)
		}

		pending := models.IdempotencyRecord{
			Key:         key,
			RequestHash: reqHash,
			Method:      method,
			Path:        path,
			CreatedAt:   time.Now().UTC(),
		}
		if err := putRecord(c, kv, storeKey, pending); err != nil {
			mu.Unlock()
			log.Warn("idempotency reserve failed", zap.Error(err))
			return fiber.NewError(fiber.StatusServiceUnavailable, "idempotency reserve failed")
		}
		mu.Unlock()

		// ---- Phase 2: run the handler once, then keep or release the key
		if err := c.Next(); err != nil {
			_ = kv.Set(ctx, storeKey, releasedRecord)
			return err
		}

		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			if err := kv.Set(ctx, storeKey, releasedRecord); err != nil {
				log.Warn("idempotency release failed", zap.Error(err))
			}
			return nil
		}

		now := time.Now().UTC()
		resp := c.Response().Body()
		pending.ResponseStatus = status
		pending.ResponseBody = append([]byte(nil), resp...)
		pending.ContentType = string(c.Response().Header.ContentType())
		pending.CompletedAt = &now
		if err := putRecord(c, kv, storeKey, pending); err != nil {
			// best-effort: don't break the successful response
			log.Warn("idempotency store failed", zap.Error(err))
		}
		return nil
	}
}

func putRecord(c *fiber.Ctx, kv database.KV, key string, rec models.IdempotencyRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return kv.Set(c.UserContext(), key, string(b))
}
