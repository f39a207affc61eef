package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"log/slog"
)

func TestNewSelectsHandlerByFormat(t *testing.T) {
	if _, ok := New(slog.LevelInfo, "json", true).(*slog.JSONHandler); !ok {
		t.Error(`New(..., "json", ...) did not return a JSON handler`)
	}
	if _, ok := New(slog.LevelInfo, "", false).(*CustomHandler); !ok {
		t.Error("New with empty format did not return the console handler")
	}
	if _, ok := New(slog.LevelInfo, "console", false).(*CustomHandler); !ok {
		t.Error("New with unknown format did not fall back to the console handler")
	}
}

func TestHandlerLevelGating(t *testing.T) {
	h := NewHandler(slog.LevelWarn)
	if h.Enabled(nil, slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !h.Enabled(nil, slog.LevelError) {
		t.Error("error disabled at warn level")
	}
}

func TestGlobalHelpersCarryLogType(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	LogEvent("chore", 5, time.Millisecond, nil, slog.Bool("deduped", false))
	LogEvent("chore", 5, time.Millisecond, errors.New("boom"))
	LogQuery("SELECT 1", time.Millisecond, nil)
	LogSystem("started")
	LogError("it broke", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		`"type":"evt"`,
		`"type":"db"`,
		`"type":"sys"`,
		`"type":"error"`,
		`"deduped":false`,
		`"msg":"Event write failed"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
