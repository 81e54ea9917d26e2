package bootstrap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
)

func TestValidateServiceConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		services string
		wantErr  bool
	}{
		{name: "http only", services: "http"},
		{name: "monitor only", services: "sla-monitor"},
		{name: "both", services: "http,sla-monitor"},
		{name: "unknown service", services: "http,worker", wantErr: true},
		{name: "empty", services: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.AppConfig{Services: tt.services}
			err := ValidateServiceConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateServiceConfig_NilConfig(t *testing.T) {
	t.Parallel()
	require.Error(t, ValidateServiceConfig(nil))
}

func TestGetEnabledServices(t *testing.T) {
	t.Parallel()

	cfg := &config.AppConfig{Services: "http, sla-monitor"}
	names := GetEnabledServices(cfg)
	sort.Strings(names)
	assert.Equal(t, []string{"http", "sla-monitor"}, names)

	assert.Empty(t, GetEnabledServices(nil))
	assert.Empty(t, GetEnabledServices(&config.AppConfig{Services: "bogus"}))
}
