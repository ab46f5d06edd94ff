package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// LevelHandler serves the level catalog.
type LevelHandler struct {
	svc ports.StageService
}

// NewLevelHandler creates a LevelHandler.
func NewLevelHandler(svc ports.StageService) *LevelHandler {
	return &LevelHandler{svc: svc}
}

// List handles GET /api/v1/levels.
func (h *LevelHandler) List(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.ListLevels(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToLevelListResponse(catalog))
}

// Get handles GET /api/v1/levels/{name}.
func (h *LevelHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := levelName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	st, err := h.svc.GetLevel(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToLevelResponse(name, st))
}

// Select handles PUT /api/v1/levels/current.
func (h *LevelHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectLevelRequest
	if !decodeJSONBody(w, r, 0, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.SelectLevel(r.Context(), req.Name); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/v1/levels/{name}/import.
func (h *LevelHandler) Import(w http.ResponseWriter, r *http.Request) {
	name, err := levelName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	st, err := h.svc.ImportLevel(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.ToLevelResponse(name, st))
}
