// Package context carries request-scoped values from the delivery layer into
// the loyalty usecases: the request id, the channel the call arrived through
// and a logger already tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyChannel   ContextKey = "channel"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Channels a ledger mutation can arrive through. Published loyalty events
// carry the channel so consumers can tell till purchases from operator fixes.
const (
	ChannelAPI = "api"
	ChannelCLI = "cli"
)

// NewScope returns ctx carrying requestID, channel and a child of base that
// logs both. An empty requestID gets a fresh UUIDv7.
func NewScope(ctx context.Context, base *slog.Logger, requestID, channel string) context.Context {
	if requestID == "" {
		requestID = newRequestID()
	}

	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyChannel, channel)

	return WithLogger(ctx, base.With(
		slog.String("request_id", requestID),
		slog.String("channel", channel),
	))
}

// GetRequestID returns the request id stored on the echo context, or a new one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return newRequestID()
}

// SetRequestID stores the request id on the echo context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetChannel returns the channel the request arrived through, or "".
func GetChannel(ctx context.Context) string {
	channel, _ := ctx.Value(KeyChannel).(string)

	return channel
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
