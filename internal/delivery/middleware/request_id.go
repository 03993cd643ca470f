package middleware

import (
	"log/slog"

	deliverycontext "loyalty/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware scopes every API request: it adopts or issues an
// X-Request-Id and attaches a logger tagged with it and the api channel.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		ctx := deliverycontext.NewScope(req.Context(), m.logger,
			req.Header.Get(deliverycontext.HeaderXRequestID), deliverycontext.ChannelAPI)
		requestID := deliverycontext.GetRequestIDFromContext(ctx)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
