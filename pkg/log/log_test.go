package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContextDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Fatalf("expected default logger")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ContextWithLogger(context.Background(), logger)
	ctx = With(ctx, "file", "10_5_2.txt")
	FromContext(ctx).InfoContext(ctx, "examining file")
	if !strings.Contains(buf.String(), "file=10_5_2.txt") {
		t.Fatalf("attribute missing from output: %q", buf.String())
	}
}
