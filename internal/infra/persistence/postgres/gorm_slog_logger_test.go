package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	deliverycontext "loyalty/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "loyalty_kv"`, 1
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "connection reset")
	assert.Contains(t, out, "component=postgres_kv")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verboseBuf.String(), "GORM query")
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ClipsLargeHistoryUpsert(t *testing.T) {
	l, buf := newBufferedGormLogger(true)
	history := strings.Repeat(`{"id":"entry","amount":5},`, 100)
	upsert := func() (string, int64) {
		return `INSERT INTO "loyalty_kv" ("key","value") VALUES ('loyalty:pointsHistory','[` + history + `]')`, 1
	}

	l.Trace(context.Background(), time.Now(), upsert, nil)

	out := buf.String()
	assert.Contains(t, out, "GORM query")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "sqlBytes=")
	assert.Less(t, len(out), len(history))
}

func TestGormSlogLogger_TagsRequestID(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock"))

	assert.Contains(t, buf.String(), "request_id=req-9")
}

func TestClipSQL(t *testing.T) {
	short := `SELECT "value" FROM "loyalty_kv"`
	assert.Equal(t, short, clipSQL(short))

	long := strings.Repeat("é", maxLoggedSQL)
	clipped := clipSQL(long)
	assert.True(t, strings.HasSuffix(clipped, "..."))
	assert.LessOrEqual(t, len(clipped), maxLoggedSQL+3)
	assert.True(t, utf8.ValidString(clipped))
}
