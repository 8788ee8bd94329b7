package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourdough-tracker/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestStarterValidator_ValidateInit(t *testing.T) {
	sv := NewStarterValidator()

	tests := []struct {
		name       string
		opts       InitOptions
		expected   domain.Ratio
		wantFields []string
	}{
		{
			name:     "valid with default ratio",
			opts:     InitOptions{JarWeight: 500, KeepTarget: 100, Ratio: "1:2:2"},
			expected: domain.NewRatio(1, 2, 2),
		},
		{
			name:       "zero jar weight",
			opts:       InitOptions{JarWeight: 0, KeepTarget: 100, Ratio: "1:2:2"},
			wantFields: []string{"jar-weight"},
		},
		{
			name:       "negative keep target",
			opts:       InitOptions{JarWeight: 500, KeepTarget: -20, Ratio: "1:2:2"},
			wantFields: []string{"keep-target"},
		},
		{
			name:       "both weights invalid",
			opts:       InitOptions{JarWeight: -1, KeepTarget: 0, Ratio: "1:2:2"},
			wantFields: []string{"jar-weight", "keep-target"},
		},
		{
			name:       "empty ratio",
			opts:       InitOptions{JarWeight: 500, KeepTarget: 100, Ratio: ""},
			wantFields: []string{"ratio"},
		},
		{
			name:       "malformed ratio",
			opts:       InitOptions{JarWeight: 500, KeepTarget: 100, Ratio: "1:2"},
			wantFields: []string{"ratio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, err := sv.ValidateInit(tt.opts)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ratio)
				return
			}

			require.Error(t, err)
			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			var fields []string
			for _, fe := range ve.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestStarterValidator_ValidateFeed(t *testing.T) {
	sv := NewStarterValidator()

	tests := []struct {
		name    string
		opts    FeedOptions
		wantErr bool
	}{
		{"weight only", FeedOptions{Weight: 650}, false},
		{"zero peak hours allowed", FeedOptions{Weight: 650, PeakHours: intPtr(0)}, false},
		{"peak hours", FeedOptions{Weight: 650, PeakHours: intPtr(6)}, false},
		{"zero weight", FeedOptions{Weight: 0}, true},
		{"negative weight", FeedOptions{Weight: -650}, true},
		{"negative peak hours", FeedOptions{Weight: 650, PeakHours: intPtr(-2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sv.ValidateFeed(tt.opts)
			if tt.wantErr {
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
