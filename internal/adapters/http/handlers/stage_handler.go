package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// StageHandler serves stage validation and legacy conversion.
type StageHandler struct {
	svc          ports.StageService
	maxBodyBytes int64
	maxBatchSize int
}

// NewStageHandler creates a StageHandler. Non-positive limits fall back to a
// 1 MB body limit and an unbounded batch size.
func NewStageHandler(svc ports.StageService, maxBodyBytes int64, maxBatchSize int) *StageHandler {
	return &StageHandler{svc: svc, maxBodyBytes: maxBodyBytes, maxBatchSize: maxBatchSize}
}

// Validate handles POST /api/v1/stages/validate. The body is the stage
// document itself; a valid document is echoed back in canonical form.
func (h *StageHandler) Validate(w http.ResponseWriter, r *http.Request) {
	body := readBody(w, r, h.maxBodyBytes)
	if body == nil {
		return
	}

	st, err := h.svc.ValidateStage(r.Context(), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, st)
}

// ValidateBatch handles POST /api/v1/stages/validate-batch. Per-document
// failures are reported in the 200 body; only a malformed batch is a 400.
func (h *StageHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateBatchRequest
	if !decodeJSONBody(w, r, h.maxBodyBytes, &req) {
		return
	}
	if err := req.Validate(h.maxBatchSize); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	results := h.svc.ValidateStages(r.Context(), req.Stages)
	writeJSON(w, r, http.StatusOK, dto.ToBatchResponse(results))
}

// Convert handles POST /api/v1/stages/convert. The body is a legacy level;
// the response is the equivalent two-board stage document.
func (h *StageHandler) Convert(w http.ResponseWriter, r *http.Request) {
	body := readBody(w, r, h.maxBodyBytes)
	if body == nil {
		return
	}

	legacy, err := level.Decode(body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	st, err := h.svc.ConvertLegacy(r.Context(), legacy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, st)
}
