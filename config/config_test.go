package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[ServiceMode]bool
		wantErr bool
	}{
		{
			name:  "single service",
			input: "http",
			want:  map[ServiceMode]bool{ServiceModeHTTP: true},
		},
		{
			name:  "multiple services",
			input: "http,sla-monitor",
			want:  map[ServiceMode]bool{ServiceModeHTTP: true, ServiceModeSLAMonitor: true},
		},
		{
			name:  "whitespace tolerated",
			input: " http , sla-monitor ",
			want:  map[ServiceMode]bool{ServiceModeHTTP: true, ServiceModeSLAMonitor: true},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only commas",
			input:   ",,",
			wantErr: true,
		},
		{
			name:    "unknown service",
			input:   "http,reaper",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServices(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppConfigServiceToggles(t *testing.T) {
	cfg := AppConfig{Services: "http,sla-monitor"}
	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.True(t, cfg.IsSLAMonitorEnabled())

	cfg = AppConfig{Services: "http"}
	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.False(t, cfg.IsSLAMonitorEnabled())

	cfg = AppConfig{Services: "bogus"}
	assert.False(t, cfg.IsHTTPServerEnabled())
	assert.False(t, cfg.IsSLAMonitorEnabled())
}

func TestSLAMonitorConfigSanitize(t *testing.T) {
	cfg := SLAMonitorConfig{CheckIntervalMinutes: 0, EscalationConcurrency: 0, ReportTTL: -time.Minute}
	cfg.Sanitize()
	assert.Equal(t, 1, cfg.CheckIntervalMinutes)
	assert.Equal(t, time.Minute, cfg.Interval())
	assert.Equal(t, 1, cfg.EscalationConcurrency)
	assert.Equal(t, 30*time.Minute, cfg.ReportTTL)

	cfg = SLAMonitorConfig{CheckIntervalMinutes: 15, EscalationConcurrency: 500, ReportTTL: time.Hour}
	cfg.Sanitize()
	assert.Equal(t, 15*time.Minute, cfg.Interval())
	assert.Equal(t, 64, cfg.EscalationConcurrency)
	assert.Equal(t, time.Hour, cfg.ReportTTL)
}

func TestHTTPConfigSanitize(t *testing.T) {
	cfg := HTTPConfig{Addr: "  ", BaseURL: "http://localhost:8080/ ", ReadHeaderTimeout: 0}
	cfg.Sanitize()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.ReadHeaderTimeout)
}

func TestObservabilityMetricsSanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "  "}
	cfg.Sanitize()
	assert.False(t, cfg.IsEnabled())

	cfg = ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "127.0.0.1:8125", StatsdPrefix: " drms "}
	cfg.Sanitize()
	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "drms", cfg.StatsdPrefix)
}
