package middleware

import (
	"log/slog"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access line per request. Reads are logged only
// in debug mode; ledger mutations (POST) are always logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug && c.Request().Method != echo.POST {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Render the error now so the logged status is the one sent.
			c.Error(err)
		}
		m.logRequest(c, time.Since(start), err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()
	ctx := req.Context()

	// The request logger already carries request_id and channel.
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "HTTP Request", attrs...)
}
