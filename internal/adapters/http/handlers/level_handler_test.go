package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/ports"
	"github.com/jsamuelsen11/twinboard/mocks"
)

func TestLevelHandler_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockStageService(t)
	svc.EXPECT().ListLevels(mock.Anything).Return(&ports.LevelCatalog{
		Names:   []string{"tutorial", "crossing"},
		Current: "tutorial",
	}, nil)

	h := handlers.NewLevelHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/levels", nil)
	h.List(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.LevelListResponse](t, rec)
	if resp.Count != 2 || resp.Current != "tutorial" {
		t.Errorf("response = %+v", resp)
	}
}

func TestLevelHandler_Get(t *testing.T) {
	t.Parallel()

	st := validStage(t)
	svc := mocks.NewMockStageService(t)
	svc.EXPECT().GetLevel(mock.Anything, "tutorial").Return(st, nil)
	svc.EXPECT().GetLevel(mock.Anything, "nope").
		Return(nil, fmt.Errorf("level %q: %w", "nope", domain.ErrNotFound))

	h := handlers.NewLevelHandler(svc)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/levels/tutorial", nil),
		map[string]string{"name": "tutorial"})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.LevelResponse](t, rec)
	if resp.Name != "tutorial" || len(resp.Stage.Boards) != 1 {
		t.Errorf("response = %+v", resp)
	}

	rec = httptest.NewRecorder()
	req = withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/levels/nope", nil),
		map[string]string{"name": "nope"})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestLevelHandler_Select(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		svcErr   error
		callSvc  bool
		wantCode int
	}{
		{name: "selects", body: `{"name":"crossing"}`, callSvc: true, wantCode: http.StatusNoContent},
		{name: "unknown level", body: `{"name":"nope"}`, callSvc: true, svcErr: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "blank name", body: `{"name":" "}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"name":`, wantCode: http.StatusBadRequest},
		{name: "mistyped name", body: `{"name":5}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockStageService(t)
			if tt.callSvc {
				svc.EXPECT().SelectLevel(mock.Anything, mock.Anything).Return(tt.svcErr)
			}
			h := handlers.NewLevelHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/levels/current", strings.NewReader(tt.body))
			h.Select(rec, req)

			requireStatus(t, rec, tt.wantCode)
		})
	}
}

func TestLevelHandler_Import(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "imported", wantCode: http.StatusCreated},
		{name: "repository disabled", svcErr: domain.ErrUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "not in repository", svcErr: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{
			name:     "invalid remote level",
			svcErr:   &domain.ValidationError{Fields: map[string]string{"boards[0].goal": domain.MsgRequired}},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockStageService(t)
			if tt.svcErr != nil {
				svc.EXPECT().ImportLevel(mock.Anything, "moat").Return(nil, tt.svcErr)
			} else {
				svc.EXPECT().ImportLevel(mock.Anything, "moat").Return(validStage(t), nil)
			}
			h := handlers.NewLevelHandler(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/levels/moat/import", nil),
				map[string]string{"name": "moat"})
			h.Import(rec, req)

			requireStatus(t, rec, tt.wantCode)
		})
	}
}

func TestLevelHandler_MissingName(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockStageService(t)
	h := handlers.NewLevelHandler(svc)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/levels/", nil), map[string]string{})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestLevelHandler_ReservedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		serve  func(*handlers.LevelHandler) http.HandlerFunc
	}{
		{name: "get", method: http.MethodGet, target: "/api/v1/levels/current", serve: func(h *handlers.LevelHandler) http.HandlerFunc { return h.Get }},
		{name: "import", method: http.MethodPost, target: "/api/v1/levels/current/import", serve: func(h *handlers.LevelHandler) http.HandlerFunc { return h.Import }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: the service must not be called.
			svc := mocks.NewMockStageService(t)
			h := handlers.NewLevelHandler(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(tt.method, tt.target, nil), map[string]string{"name": "current"})
			tt.serve(h)(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Contains(t, rec.Body.String(), `is reserved`)
		})
	}
}
