package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, "test", tt.verbose)

			l.Printf("rendered %d pixels", 42)
			l.Debugf("bvh depth %d", 7)

			out := buf.String()
			if !strings.Contains(out, "rendered 42 pixels") {
				t.Errorf("Expected info output, got %q", out)
			}
			if got := strings.Contains(out, "bvh depth 7"); got != tt.wantDebug {
				t.Errorf("Debug output present = %t, want %t", got, tt.wantDebug)
			}
			if !strings.Contains(out, "test") {
				t.Errorf("Expected prefix in output, got %q", out)
			}
		})
	}
}
