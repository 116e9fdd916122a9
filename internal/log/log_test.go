package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		debug bool
		level zapcore.Level
	}{
		{false, zapcore.InfoLevel},
		{true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		l, err := New(tt.debug)
		if err != nil {
			t.Fatalf("New(%v) error: %v", tt.debug, err)
		}
		if !l.Core().Enabled(tt.level) {
			t.Errorf("New(%v): level %s disabled", tt.debug, tt.level)
		}
		if !tt.debug && l.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("New(false): debug enabled")
		}
	}

	if NewOrNop(false) == nil {
		t.Errorf("NewOrNop returned nil")
	}
}
