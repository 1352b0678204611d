package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"ticket-search-service/internal/domain"
)

const keyNamespace = "search:"

// Key derives a stable fingerprint for a search request. Semantically
// equal requests always hash to the same key: the canonical payload is
// a fixed field set serialized with sorted object keys, and dates are
// normalized to UTC RFC3339 before hashing.
func Key(req domain.SearchRequest) string {
	payload := map[string]any{
		"query": nullableString(req.Query),
		"filters": map[string]any{
			"team":      nullableString(req.Filters.Team),
			"league":    nullableString(req.Filters.League),
			"location":  nullableString(req.Filters.Location),
			"date_from": nullableTime(req.Filters.DateFrom),
			"date_to":   nullableTime(req.Filters.DateTo),
		},
		"limit": req.Limit,
	}

	// Only plain strings and ints reach the encoder; Marshal cannot fail.
	raw, _ := json.Marshal(payload)
	sum := sha1.Sum(raw)
	return keyNamespace + hex.EncodeToString(sum[:])
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
