package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-board-service/mocks"
)

const testBoard = "kanban"

// newBoardHandler wires a handler to a registry that resolves testBoard to
// the returned service mock.
func newBoardHandler(t *testing.T) (*handlers.BoardHandler, *mocks.MockBoardService) {
	t.Helper()
	registry := mocks.NewMockBoardRegistry(t)
	svc := mocks.NewMockBoardService(t)
	registry.EXPECT().Board(testBoard).Return(svc, nil).Maybe()
	return handlers.NewBoardHandler(registry), svc
}

// boardRequest builds a request against testBoard with body encoded as JSON
// and params set as chi URL params.
func boardRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			t.Fatalf("failed to encode JSON body: %v", err)
		}
		req = httptest.NewRequest(method, target, buf)
	}
	all := map[string]string{handlers.BoardParam: testBoard}
	maps.Copy(all, params)
	return routed(req, all)
}

// routed attaches a chi route context holding params, as the router would.
func routed(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
