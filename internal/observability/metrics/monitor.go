// Package metrics provides standardised metric emission helpers.
package metrics

import (
	"time"

	obserrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/errors"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// CycleMetric captures the outcome of one SLA monitoring cycle.
type CycleMetric struct {
	Trigger   string
	Checked   int
	AtRisk    int
	Breached  int
	Escalated int
	Duration  time.Duration
	Err       error
}

// EmitMonitorCycle emits standardised SLA monitor cycle metrics.
func EmitMonitorCycle(sink statsd.Sink, in CycleMetric) {
	if sink == nil {
		return
	}

	result := ResultSuccess
	if in.Err != nil {
		result = ResultError
	} else if in.Checked == 0 {
		result = ResultNoop
	}

	tags := map[string]string{
		"trigger": in.Trigger,
		"result":  result,
	}

	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("sla_monitor.cycle", 1, tags)

	if in.Duration > 0 {
		sink.Timing("sla_monitor.cycle_duration", in.Duration, CloneTags(tags))
	}

	if in.Err != nil {
		return
	}

	sink.Gauge("sla_monitor.cases_checked", float64(in.Checked), nil)
	sink.Gauge("sla_monitor.cases_at_risk", float64(in.AtRisk), nil)
	sink.Gauge("sla_monitor.cases_breached", float64(in.Breached), nil)
	if in.Escalated > 0 {
		sink.Count("sla_monitor.escalations", int64(in.Escalated), CloneTags(tags))
	}
	sink.Gauge("sla_monitor.last_success_epoch", float64(time.Now().Unix()), nil)
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
