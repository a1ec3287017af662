package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name      string
		prev      sql.DBStats
		cur       sql.DBStats
		wantLevel string
	}{
		{
			name:      "no new waits",
			prev:      sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
			cur:       sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
			wantLevel: "",
		},
		{
			name:      "short waits at debug",
			prev:      sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond},
			wantLevel: "DEBUG",
		},
		{
			name:      "long waits at warn",
			cur:       sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond, MaxOpenConnections: 10},
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &poolMonitor{
				logger:    slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				warnAfter: poolWaitWarnAfter,
				prev:      tt.prev,
			}

			m.observe(context.Background(), tt.cur)

			assert.Equal(t, tt.cur, m.prev)
			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, buf.String(), `"msg":"Postgres pool wait"`)
		})
	}
}

func TestPoolMonitor_RunWithoutDB(t *testing.T) {
	m := &poolMonitor{logger: slog.New(slog.DiscardHandler)}

	done := make(chan struct{})
	go func() {
		m.run(context.Background(), nil, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return without a database")
	}
}
