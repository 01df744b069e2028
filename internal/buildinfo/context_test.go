package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctx       *Context
		wantVer   string
		wantDate  string
		wantShown string
	}{
		{"nil", nil, "dev", "unknown", ""},
		{"empty", &Context{}, "dev", "unknown", "dev (built unknown)"},
		{"release", &Context{Version: "v1.2.0", BuildDate: "2026-10-01"}, "v1.2.0", "2026-10-01", "v1.2.0 (built 2026-10-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantVer, tt.ctx.GetVersion())
			assert.Equal(t, tt.wantDate, tt.ctx.GetBuildDate())
			if tt.ctx != nil {
				assert.Equal(t, tt.wantShown, tt.ctx.String())
			}
		})
	}
}

func TestCurrentUsesLinkTimeValues(t *testing.T) {
	oldVersion, oldDate := version, buildDate
	t.Cleanup(func() { version, buildDate = oldVersion, oldDate })

	version, buildDate = "v0.3.1", "2026-09-30T12:00:00Z"
	c := Current()
	assert.Equal(t, "v0.3.1", c.GetVersion())
	assert.Equal(t, "2026-09-30T12:00:00Z", c.GetBuildDate())
}
