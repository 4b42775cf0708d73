package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// boardParam is the URL parameter carrying the board name; it matches
// handlers.BoardParam.
const boardParam = "board"

// routeInfo reports the matched chi route pattern and board name for r. It
// must be called after the downstream handler has run, since chi fills in
// the route context while routing. Outside a chi router the pattern falls
// back to the raw path and the board is empty.
func routeInfo(r *http.Request) (pattern, boardName string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path, ""
	}
	pattern = rctx.RoutePattern()
	if pattern == "" {
		pattern = r.URL.Path
	}
	return pattern, rctx.URLParam(boardParam)
}
