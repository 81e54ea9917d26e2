package httpx

import (
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Customers      *service.CustomerService
	Cases          *service.CaseService
	Documents      *service.DocumentService
	SLADefinitions *service.SLADefinitionService
	// Optional: SLA monitor admin surface. Nil when the monitor service
	// mode is not enabled on this instance.
	Monitor MonitorService
}

// NewRouter creates and configures a new HTTP router. Middleware (logging,
// panic recovery) is applied by the caller.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	customerHandlers := &CustomerHandlers{Svc: services.Customers}
	caseHandlers := &CaseHandlers{Svc: services.Cases}
	documentHandlers := &DocumentHandlers{Svc: services.Documents}
	slaHandlers := &SLADefinitionHandlers{Svc: services.SLADefinitions}

	registerCustomerRoutes(mux, customerHandlers)
	registerCaseRoutes(mux, caseHandlers)
	registerDocumentRoutes(mux, documentHandlers)
	registerSLARoutes(mux, slaHandlers)
	if services.Monitor != nil {
		registerMonitorRoutes(mux, &MonitorHandlers{Svc: services.Monitor})
	}
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerCustomerRoutes(mux *http.ServeMux, h *CustomerHandlers) {
	mux.HandleFunc("POST /api/customers", h.Create)
	mux.HandleFunc("GET /api/customers", h.List)
	mux.HandleFunc("GET /api/customers/{id}", h.GetByID)
}

func registerCaseRoutes(mux *http.ServeMux, h *CaseHandlers) {
	mux.HandleFunc("POST /api/cases", h.Create)
	mux.HandleFunc("GET /api/cases", h.List)
	mux.HandleFunc("GET /api/cases/{id}", h.GetByID)
	mux.HandleFunc("PUT /api/cases/{id}/status", h.UpdateStatus)
	mux.HandleFunc("PUT /api/cases/{id}/sla", h.AttachSLA)
	mux.HandleFunc("GET /api/cases/{id}/escalations", h.Escalations)
}

func registerDocumentRoutes(mux *http.ServeMux, h *DocumentHandlers) {
	mux.HandleFunc("POST /api/documents", h.Create)
	mux.HandleFunc("GET /api/documents/{id}", h.GetByID)
	mux.HandleFunc("GET /api/cases/{id}/documents", h.ListByCase)
	mux.HandleFunc("POST /api/cases/{id}/documents/query", h.Query)
}

func registerSLARoutes(mux *http.ServeMux, h *SLADefinitionHandlers) {
	mux.HandleFunc("POST /api/sla-definitions", h.Create)
	mux.HandleFunc("GET /api/sla-definitions", h.List)
	mux.HandleFunc("GET /api/sla-definitions/{id}", h.GetByID)
}

func registerMonitorRoutes(mux *http.ServeMux, h *MonitorHandlers) {
	mux.HandleFunc("POST /api/admin/sla-monitor/run", h.Run)
	mux.HandleFunc("GET /api/admin/sla-monitor/status", h.Status)
}
