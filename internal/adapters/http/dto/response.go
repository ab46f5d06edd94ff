// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"errors"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// BatchResponse is the body of a validate-batch response. Results are in
// request order.
type BatchResponse struct {
	Results []BatchItem `json:"results"`
	Total   int         `json:"total"`
	Valid   int         `json:"valid"`
	Invalid int         `json:"invalid"`
}

// BatchItem is the outcome for one document of a batch. Errors use the same
// locations as a single validation failure.
type BatchItem struct {
	Index  int           `json:"index"`
	Valid  bool          `json:"valid"`
	Stage  *stage.Shape  `json:"stage,omitempty"`
	Detail string        `json:"detail,omitempty"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ToBatchResponse converts service results into a BatchResponse.
func ToBatchResponse(results []ports.StageResult) BatchResponse {
	resp := BatchResponse{
		Results: make([]BatchItem, len(results)),
		Total:   len(results),
	}

	for i, r := range results {
		item := BatchItem{Index: i}
		if r.Err != nil {
			item.Detail = r.Err.Error()
			var verr *domain.ValidationError
			if errors.As(r.Err, &verr) {
				item.Errors = validationFieldsToDetails(verr.Fields)
			}
			resp.Invalid++
		} else {
			shape := r.Stage.Shape()
			item.Valid = true
			item.Stage = &shape
			resp.Valid++
		}
		resp.Results[i] = item
	}

	return resp
}

// LevelListResponse is the body of GET /api/v1/levels.
type LevelListResponse struct {
	Levels  []string `json:"levels"`
	Count   int      `json:"count"`
	Current string   `json:"current,omitempty"`
}

// ToLevelListResponse converts the level catalog.
func ToLevelListResponse(c *ports.LevelCatalog) LevelListResponse {
	names := c.Names
	if names == nil {
		names = []string{}
	}
	return LevelListResponse{Levels: names, Count: len(names), Current: c.Current}
}

// LevelResponse is a single named level.
type LevelResponse struct {
	Name  string      `json:"name"`
	Stage stage.Shape `json:"stage"`
}

// ToLevelResponse pairs a stage with its catalog name.
func ToLevelResponse(name string, st *stage.Stage) LevelResponse {
	return LevelResponse{Name: name, Stage: st.Shape()}
}

// LoopResponse is the body of GET /api/v1/loop.
type LoopResponse struct {
	Frame   int64   `json:"frame"`
	X       float64 `json:"x"`
	Running bool    `json:"running"`
	FPS     int     `json:"fps"`
}

// ToLoopResponse converts the render loop status.
func ToLoopResponse(s ports.LoopStatus) LoopResponse {
	return LoopResponse{Frame: s.Frame, X: s.X, Running: s.Running, FPS: s.FPS}
}
