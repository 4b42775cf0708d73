package remote

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-board-service/internal/platform/config"
	"github.com/jsamuelsen11/go-board-service/internal/platform/httpclient"
)

type doc = map[string]any

// fakeStore is an in-memory document store speaking the /project and /task
// protocol. It records every request as "METHOD /path".
type fakeStore struct {
	t *testing.T

	mu       sync.Mutex
	seq      int
	projects []doc
	tasks    []doc
	requests []string
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	return &fakeStore{t: t}
}

// client starts an httptest server for the store and returns a client for it.
func (s *fakeStore) client() *acl.ProjectClient {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /project", func(w http.ResponseWriter, _ *http.Request) {
		s.respond(w, s.projects)
	})
	mux.HandleFunc("POST /project", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.create(&s.projects, "p", s.decode(r)))
	})
	mux.HandleFunc("PATCH /project/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.patch(s.projects, r.PathValue("id"), s.decode(r)))
	})
	mux.HandleFunc("DELETE /project/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.remove(&s.projects, r.PathValue("id")))
	})
	mux.HandleFunc("GET /task", func(w http.ResponseWriter, r *http.Request) {
		pid := r.URL.Query().Get("projectId")
		out := []doc{}
		for _, d := range s.tasks {
			if d["projectId"] == pid {
				out = append(out, d)
			}
		}
		s.respond(w, out)
	})
	mux.HandleFunc("POST /task", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.create(&s.tasks, "t", s.decode(r)))
	})
	mux.HandleFunc("PATCH /task/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.patch(s.tasks, r.PathValue("id"), s.decode(r)))
	})
	mux.HandleFunc("DELETE /task/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.remove(&s.tasks, r.PathValue("id")))
	})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		mux.ServeHTTP(w, r)
	}))
	s.t.Cleanup(ts.Close)

	cfg := &config.ClientConfig{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 100, Timeout: time.Second, HalfOpenLimit: 1},
	}
	logger := slog.New(slog.DiscardHandler)
	return acl.NewProjectClient(httpclient.New(cfg, "fake-store", nil, logger), logger)
}

// addProject and addTask seed documents without recording requests.
func (s *fakeStore) addProject(d doc) {
	s.projects = append(s.projects, d)
}

func (s *fakeStore) addTask(d doc) {
	s.tasks = append(s.tasks, d)
}

func (s *fakeStore) task(id string) doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tasks, func(d doc) bool { return d["_id"] == id })
	if i < 0 {
		return nil
	}
	return s.tasks[i]
}

func (s *fakeStore) project(id string) doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.projects, func(d doc) bool { return d["_id"] == id })
	if i < 0 {
		return nil
	}
	return s.projects[i]
}

// takeRequests returns and clears the request log.
func (s *fakeStore) takeRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.requests
	s.requests = nil
	return out
}

func (s *fakeStore) decode(r *http.Request) doc {
	var d doc
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		s.t.Errorf("decoding %s %s body: %v", r.Method, r.URL.Path, err)
	}
	return d
}

func (s *fakeStore) respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.t.Errorf("encoding response: %v", err)
	}
}

func (s *fakeStore) create(coll *[]doc, prefix string, d doc) doc {
	s.seq++
	d["_id"] = fmt.Sprintf("%s%d", prefix, 100+s.seq)
	*coll = append(*coll, d)
	return d
}

func (s *fakeStore) patch(coll []doc, id string, d doc) doc {
	for _, cur := range coll {
		if cur["_id"] == id {
			for k, v := range d {
				cur[k] = v
			}
			return cur
		}
	}
	return nil
}

func (s *fakeStore) remove(coll *[]doc, id string) doc {
	i := slices.IndexFunc(*coll, func(d doc) bool { return d["_id"] == id })
	if i < 0 {
		return nil
	}
	d := (*coll)[i]
	*coll = slices.Delete(*coll, i, i+1)
	return d
}
