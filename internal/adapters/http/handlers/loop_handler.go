package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// LoopHandler exposes the render loop's state and its drawing surface.
type LoopHandler struct {
	loop ports.RenderLoop
}

// NewLoopHandler creates a LoopHandler.
func NewLoopHandler(loop ports.RenderLoop) *LoopHandler {
	return &LoopHandler{loop: loop}
}

// Status handles GET /api/v1/loop.
func (h *LoopHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToLoopResponse(h.loop.Status()))
}

// Frame handles GET /api/v1/frame?format=png|bmp and writes the encoded
// surface.
func (h *LoopHandler) Frame(w http.ResponseWriter, r *http.Request) {
	frame, err := h.loop.Snapshot(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", frame.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(frame.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(frame.Data)
}
