package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

type requestIDKey struct{}

// requestIDBytes yields 24 hex characters per id.
const requestIDBytes = 12

func generateRequestID() string {
	buf := make([]byte, requestIDBytes)
	if _, err := rand.Read(buf); err != nil {
		// Entropy exhaustion is effectively unreachable; a timestamp id
		// keeps requests traceable anyway.
		return "t" + strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
