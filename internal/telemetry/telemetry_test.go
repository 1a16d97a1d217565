package telemetry

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		log, err := NewLogger("warn", format)
		if err != nil {
			t.Fatalf("%q: %v", format, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) || !log.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("%q: level not applied", format)
		}
	}
	if _, err := NewLogger("loud", "json"); err == nil {
		t.Fatalf("expected level error")
	}
	if _, err := NewLogger("info", "xml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestSetupTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "arona", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}
