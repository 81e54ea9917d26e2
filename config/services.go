package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the HTTP server.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeSLAMonitor runs the background SLA monitoring loop.
	ServiceModeSLAMonitor ServiceMode = "sla-monitor"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{
		ServiceModeHTTP,
		ServiceModeSLAMonitor,
	}
}

// ParseServices parses a comma-delimited string of service names and returns the enabled services.
// It validates that all service names are valid and returns an error if any are invalid.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	services := make(map[ServiceMode]bool)

	if servicesStr == "" {
		return services, errors.New("at least one service must be specified")
	}

	parts := strings.Split(servicesStr, ",")
	for _, part := range parts {
		serviceName := strings.TrimSpace(part)
		if serviceName == "" {
			continue
		}

		mode := ServiceMode(serviceName)
		switch mode {
		case ServiceModeHTTP, ServiceModeSLAMonitor:
			services[mode] = true
		default:
			return nil, fmt.Errorf(
				"invalid service name: %q (valid options: http, sla-monitor)",
				serviceName,
			)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}

	return services, nil
}

// SLAMonitorConfig contains SLA monitor service configuration.
type SLAMonitorConfig struct {
	// CheckIntervalMinutes is the number of minutes between evaluation cycles.
	CheckIntervalMinutes int `env:"SLA_MONITOR_CHECK_INTERVAL_MINUTES" envDefault:"5"`

	// EscalationConcurrency bounds how many escalations are dispatched in parallel
	// within one cycle.
	EscalationConcurrency int `env:"SLA_MONITOR_ESCALATION_CONCURRENCY" envDefault:"4"`

	// ReportTTL is how long the latest cycle report stays cached in Redis.
	ReportTTL time.Duration `env:"SLA_MONITOR_REPORT_TTL" envDefault:"30m"`
}

// Interval returns the check interval as a duration.
func (c *SLAMonitorConfig) Interval() time.Duration {
	return time.Duration(c.CheckIntervalMinutes) * time.Minute
}

// Sanitize applies guardrails to SLA monitor configuration values.
func (c *SLAMonitorConfig) Sanitize() {
	if c.CheckIntervalMinutes < 1 {
		c.CheckIntervalMinutes = 1
	}
	if c.EscalationConcurrency < 1 {
		c.EscalationConcurrency = 1
	}
	if c.EscalationConcurrency > 64 {
		c.EscalationConcurrency = 64
	}
	if c.ReportTTL <= 0 {
		c.ReportTTL = 30 * time.Minute
	}
}
