package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"loan-auditor/service"
)

type AuditHandler struct {
	service *service.EvaluatorService
	logger  *zap.Logger
}

func NewAuditHandler(service *service.EvaluatorService, logger *zap.Logger) *AuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditHandler{service: service, logger: logger}
}

// Report handles GET /audit/report with the plain-text audit summary.
func (h *AuditHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.service.AuditReport()
	if err != nil {
		h.logger.Error("error building audit report", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report)); err != nil {
		h.logger.Error("error writing report", zap.Error(err))
	}
}

// Decisions handles GET /audit/decisions with the full log as JSON.
func (h *AuditHandler) Decisions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	decisions, err := h.service.Decisions()
	if err != nil {
		h.logger.Error("error loading decisions", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(decisions); err != nil {
		h.logger.Error("error encoding decisions", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("error writing response", zap.Error(err))
	}
}
