package httpx

import (
	"context"
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
)

// MonitorService is the subset of the SLA monitor the admin API needs.
type MonitorService interface {
	RunNow(ctx context.Context) (*model.MonitorReport, error)
	Status() model.MonitorStatus
	LastRun() *model.RunSummary
}

// MonitorHandlers provides HTTP handlers for SLA monitor administration.
type MonitorHandlers struct {
	Svc MonitorService
}

// Run handles HTTP requests to trigger one SLA evaluation pass immediately.
// Unlike timer-driven cycles, failures surface to the caller.
func (h *MonitorHandlers) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.Svc.RunNow(r.Context())
	if err != nil {
		WriteServiceError(w, err, "evaluation_failed")
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// Status handles HTTP requests for the monitor's lifecycle state and the
// summary of its most recent cycle.
func (h *MonitorHandlers) Status(w http.ResponseWriter, r *http.Request) {
	status := h.Svc.Status()

	WriteJSON(w, http.StatusOK, map[string]any{
		"enabled":          status.Enabled,
		"running":          status.Running,
		"interval_minutes": status.IntervalMinutes,
		"last_run":         h.Svc.LastRun(),
	})
}
