package model

import "time"

// RunSummary describes one completed SLA evaluation cycle.
// Only the most recent summary is retained, in memory; summaries are never persisted.
type RunSummary struct {
	Checked    int           `json:"checked"`
	OnTrack    int           `json:"on_track"`
	AtRisk     int           `json:"at_risk"`
	Breached   int           `json:"breached"`
	Escalated  int           `json:"escalated"`
	Duration   time.Duration `json:"duration_ns"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Summarize folds a slice of case results into a run summary.
func Summarize(results []CaseSLAResult, startedAt, finishedAt time.Time) RunSummary {
	summary := RunSummary{
		Checked:    len(results),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Duration:   finishedAt.Sub(startedAt),
	}
	for i := range results {
		switch results[i].Status {
		case SLAStatusOnTrack:
			summary.OnTrack++
		case SLAStatusAtRisk:
			summary.AtRisk++
		case SLAStatusBreached:
			summary.Breached++
		}
		if results[i].Escalated {
			summary.Escalated++
		}
	}
	return summary
}

// MonitorReport is the result of a manually triggered evaluation pass.
type MonitorReport struct {
	Summary RunSummary      `json:"summary"`
	Results []CaseSLAResult `json:"results"`
}

// MonitorStatus is a point-in-time view of the SLA monitor lifecycle.
type MonitorStatus struct {
	Enabled         bool `json:"enabled"`
	Running         bool `json:"running"`
	IntervalMinutes int  `json:"interval_minutes"`
}
