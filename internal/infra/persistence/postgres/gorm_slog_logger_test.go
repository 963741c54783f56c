package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pesantren/config"
	deliverycontext "pesantren/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "entitlements" WHERE actor_id = 'a'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantEmpty bool
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound, wantEmpty: true},
		{name: "duplicate active entitlement is debug", err: errors.WithStack(&pgconn.PgError{Code: pgUniqueViolation}), wantLevel: "level=DEBUG"},
		{name: "unknown course is debug", err: &pgconn.PgError{Code: pgForeignKeyViolation}, wantLevel: "level=DEBUG"},
		{name: "cancelled lookup is debug", err: context.Canceled, wantLevel: "level=DEBUG"},
		{name: "store failure is error", err: errors.New("connection reset by peer"), wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(t, &config.Config{})

			l.Trace(context.Background(), time.Now(), sqlAndRows, tt.err)

			if tt.wantEmpty {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "GORM query failed")
			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = 10 * time.Millisecond
	l, buf := newTestGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now().Add(-50*time.Millisecond), sqlAndRows, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "slowThreshold=10ms")
}

func TestGormSlogLogger_FastQueryOnlyInDebug(t *testing.T) {
	l, buf := newTestGormLogger(t, &config.Config{})
	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf = newTestGormLogger(t, cfg)
	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "GORM query")
	assert.Contains(t, buf.String(), "rows=1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newTestGormLogger(t, &config.Config{})

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("connection reset by peer"))

	assert.Contains(t, reqBuf.String(), "request_id=req-42")
	assert.Contains(t, reqBuf.String(), "GORM query failed")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf := newTestGormLogger(t, &config.Config{})

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	l.Info(context.Background(), "migrating %s", "entitlements")

	assert.Empty(t, buf.String())
}
