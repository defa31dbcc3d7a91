package validation

import (
	"strings"
	"testing"
	"time"
)

func TestImportValidator_ValidateRecord(t *testing.T) {
	iv := NewImportValidator()
	duration := func(d int64) *int64 { return &d }

	tests := []struct {
		name        string
		start       string
		end         string
		duration    *int64
		expectErr   bool
		errContains string
	}{
		{
			name:     "Valid record",
			start:    "2025-03-10T09:00:00Z",
			end:      "2025-03-10T09:30:00Z",
			duration: duration(1800),
		},
		{
			name:     "Equal timestamps accepted",
			start:    "2025-03-10T09:00:00Z",
			end:      "2025-03-10T09:00:00Z",
			duration: duration(0),
		},
		{
			name:     "Offset timestamps accepted",
			start:    "2025-03-10T09:00:00+05:30",
			end:      "2025-03-10T10:00:00+05:30",
			duration: duration(3600),
		},
		{
			name:        "Missing start",
			start:       "",
			end:         "2025-03-10T09:30:00Z",
			duration:    duration(1800),
			expectErr:   true,
			errContains: "start_time",
		},
		{
			name:        "Unparseable end",
			start:       "2025-03-10T09:00:00Z",
			end:         "yesterday evening",
			duration:    duration(1800),
			expectErr:   true,
			errContains: "end_time",
		},
		{
			name:        "Missing duration",
			start:       "2025-03-10T09:00:00Z",
			end:         "2025-03-10T09:30:00Z",
			duration:    nil,
			expectErr:   true,
			errContains: "duration_seconds",
		},
		{
			name:        "Negative duration",
			start:       "2025-03-10T09:00:00Z",
			end:         "2025-03-10T09:30:00Z",
			duration:    duration(-60),
			expectErr:   true,
			errContains: "duration_seconds",
		},
		{
			name:        "End before start",
			start:       "2025-03-10T09:30:00Z",
			end:         "2025-03-10T09:00:00Z",
			duration:    duration(1800),
			expectErr:   true,
			errContains: "time_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := iv.ValidateRecord(3, tt.start, tt.end, tt.duration)
			if tt.expectErr {
				if err == nil {
					t.Fatal("ValidateRecord() expected error, got nil")
				}
				if !strings.Contains(err.Error(), "records[3]") {
					t.Errorf("error should name the record index: %v", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error should mention %q: %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateRecord() unexpected error: %v", err)
			}
			wantStart, _ := time.Parse(time.RFC3339, tt.start)
			if !start.Equal(wantStart) {
				t.Errorf("start = %v, expected %v", start, wantStart)
			}
			wantEnd, _ := time.Parse(time.RFC3339, tt.end)
			if !end.Equal(wantEnd) {
				t.Errorf("end = %v, expected %v", end, wantEnd)
			}
		})
	}
}
