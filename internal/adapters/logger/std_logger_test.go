package logger

import (
	"bytes"
	"testing"

	"github.com/baditaflorin/l"
)

func TestNewStdLogger(t *testing.T) {
	lg, err := NewStdLogger()
	if err != nil {
		t.Fatalf("NewStdLogger: %v", err)
	}
	defer lg.Close()

	// The default profile is synchronous; logging must not panic or block.
	lg.Info("conversion finished", "style", "camel_case")
}

func TestNewCustomStdLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := NewCustomStdLogger(l.Config{
		Output:     &buf,
		JsonFormat: false,
		AsyncWrite: false,
	})
	if err != nil {
		t.Fatalf("NewCustomStdLogger: %v", err)
	}

	lg.Info("tokenized input", "token_count", 3)
	if err := lg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if buf.Len() == 0 {
		t.Error("expected synchronous logger to write output")
	}
}
