// internal/httpserver/server.go
//
// HTTP wiring for the Wordle helper.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /guesses: run the guess generator for one request.
//
// Notes:
//   - Generation is stateless; nothing survives a request.
//   - The response is bounded by a limit so pathological inputs cannot
//     materialize the full permutation space.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/hintforge/wordle-helper/internal/guess"
	"github.com/hintforge/wordle-helper/internal/words"
)

const (
	defaultLimit = 1000
	maxLimit     = 10000
)

// Server bundles the router and the configured fallback dictionary.
type Server struct {
	r *chi.Mux

	// dict filters candidates when a request carries no inline word list.
	// May be nil, in which case unfiltered requests get every candidate.
	dict      guess.Dictionary
	dictWords int
}

// New constructs a Server, installs middleware, and registers routes.
// dict may be nil; dictWords is the size reported by /debug/words.
func New(dict guess.Dictionary, dictWords int) *Server {
	s := &Server{r: chi.NewRouter(), dict: dict, dictWords: dictWords}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /guesses"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dictWords})
	})

	s.r.Post("/guesses", s.handleGuesses)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ guesses ------------------------------------

// guessesReq/Res payloads for POST /guesses.
type guessesReq struct {
	Pattern    string   `json:"pattern"`
	Available  string   `json:"available"`
	Present    string   `json:"present"`
	Words      []string `json:"words,omitempty"`      // optional inline dictionary
	Unfiltered bool     `json:"unfiltered,omitempty"` // skip the server dictionary
	Limit      int      `json:"limit,omitempty"`
}
type guessesRes struct {
	Guesses   []string `json:"guesses"`
	Count     int      `json:"count"`
	Truncated bool     `json:"truncated"`
}

// handleGuesses validates the request, picks a dictionary, and collects up
// to limit candidates from the lazy sequence.
func (s *Server) handleGuesses(w http.ResponseWriter, r *http.Request) {
	var req guessesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	dict := s.dict
	switch {
	case len(req.Words) > 0:
		dict = words.ParseSet(strings.Join(req.Words, " "), 0)
	case req.Unfiltered:
		dict = nil
	}

	seq, err := guess.Generate(req.Pattern, req.Available, req.Present, dict)
	if err != nil {
		switch {
		case errors.Is(err, guess.ErrMalformedPattern):
			http.Error(w, `{"error":"malformed_pattern"}`, http.StatusBadRequest)
		case errors.Is(err, guess.ErrInvalidConstraint):
			http.Error(w, `{"error":"invalid_constraint"}`, http.StatusBadRequest)
		default:
			http.Error(w, `{"error":"generate_failed"}`, http.StatusInternalServerError)
		}
		return
	}

	res := guessesRes{Guesses: []string{}}
	for g := range seq {
		if len(res.Guesses) == limit {
			res.Truncated = true
			break
		}
		res.Guesses = append(res.Guesses, g)
	}
	res.Count = len(res.Guesses)

	log.Debug().
		Str("pattern", req.Pattern).
		Int("count", res.Count).
		Bool("truncated", res.Truncated).
		Msg("generated guesses")

	_ = json.NewEncoder(w).Encode(res)
}
