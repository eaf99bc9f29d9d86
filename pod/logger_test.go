package pod

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("logs pass through to slog", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug msg", "k", "v")
		adapter.Info("info msg")
		adapter.Warn("warn msg")
		adapter.Error("error msg")

		out := buf.String()
		for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg", "k=v"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		child := adapter.With("component", "decoder")
		child.Info("hello")

		if !strings.Contains(buf.String(), "component=decoder") {
			t.Errorf("output should contain attribute from With, got:\n%s", buf.String())
		}
	})
}

func TestDecoderLogDefaults(t *testing.T) {
	d := NewDecoder()
	if _, ok := d.log().(NopLogger); !ok {
		t.Error("nil Logger should default to NopLogger")
	}

	d.Logger = NewSlogAdapter(nil)
	if _, ok := d.log().(*SlogAdapter); !ok {
		t.Error("configured Logger should be returned")
	}
}
