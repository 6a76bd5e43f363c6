package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"loan-auditor/domain"
	"loan-auditor/service"
)

type EvaluateHandler struct {
	service *service.EvaluatorService
	logger  *zap.Logger
}

func NewEvaluateHandler(service *service.EvaluatorService, logger *zap.Logger) *EvaluateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluateHandler{service: service, logger: logger}
}

// Evaluate handles POST /applicants/evaluate for a single applicant.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var applicant domain.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicant); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	decision, err := h.service.Evaluate(applicant)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, decision)
}

// batchItemResponse flattens a domain.BatchItem for the wire; errors
// travel as strings.
type batchItemResponse struct {
	ApplicantName string               `json:"applicant_name"`
	Decision      *domain.LoanDecision `json:"decision,omitempty"`
	Error         string               `json:"error,omitempty"`
}

// EvaluateBatch handles POST /applicants/evaluate-batch. Every applicant
// gets a result item in input order, succeed or fail.
func (h *EvaluateHandler) EvaluateBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var applicants []domain.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicants); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(applicants) == 0 {
		http.Error(w, "no applicants provided", http.StatusBadRequest)
		return
	}

	items := h.service.EvaluateBatch(applicants)

	response := make([]batchItemResponse, 0, len(items))
	for _, item := range items {
		out := batchItemResponse{
			ApplicantName: item.ApplicantName,
			Decision:      item.Decision,
		}
		if item.Err != nil {
			out.Error = item.Err.Error()
		}
		response = append(response, out)
	}

	h.writeJSON(w, response)
}

func (h *EvaluateHandler) writeError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Error("evaluation failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeJSON encodes into a buffer first so a failed encode never writes a
// partial body after the header.
func (h *EvaluateHandler) writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("error writing response", zap.Error(err))
	}
}
