package models

import "time"

// IdempotencyRecord stores the first successful response for a given
// Idempotency-Key. It lives in the same KV backend as the invoices, under
// its own key.
type IdempotencyRecord struct {
	Key            string     `json:"key"`
	RequestHash    string     `json:"requestHash"` // sha256 of method|path|body
	Method         string     `json:"method"`
	Path           string     `json:"path"`
	ResponseStatus int        `json:"responseStatus"` // 0 => not completed yet
	ResponseBody   []byte     `json:"responseBody,omitempty"`
	ContentType    string     `json:"contentType,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (r IdempotencyRecord) Completed() bool {
	return r.ResponseStatus != 0
}
