package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hintforge/wordle-helper/internal/words"
)

func post(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/guesses", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := New(nil, 0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuessesUnfiltered(t *testing.T) {
	srv := New(nil, 0)
	rec := post(t, srv, map[string]any{
		"pattern":   "ab???",
		"available": "",
		"present":   "cde",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res guessesRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Count != 6 || res.Truncated {
		t.Fatalf("expected 6 guesses untruncated, got %+v", res)
	}
	sort.Strings(res.Guesses)
	want := []string{"abcde", "abced", "abdce", "abdec", "abecd", "abedc"}
	if diff := cmp.Diff(want, res.Guesses); diff != "" {
		t.Fatalf("guesses mismatch (-want +got):\n%s", diff)
	}
}

func TestGuessesInlineWords(t *testing.T) {
	srv := New(nil, 0)
	rec := post(t, srv, map[string]any{
		"pattern":   "cr???",
		"available": "aeton",
		"words":     []string{"CRANE", "crate", "crony"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res guessesRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	sort.Strings(res.Guesses)
	want := []string{"crane", "crate"}
	if diff := cmp.Diff(want, res.Guesses); diff != "" {
		t.Fatalf("guesses mismatch (-want +got):\n%s", diff)
	}
}

func TestGuessesServerDictionary(t *testing.T) {
	dict := words.ParseSet("store stare", 5)
	srv := New(dict, dict.Count())

	rec := post(t, srv, map[string]any{
		"pattern":   "st???",
		"available": "oare",
	})
	var res guessesRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	sort.Strings(res.Guesses)
	want := []string{"stare", "store"}
	if diff := cmp.Diff(want, res.Guesses); diff != "" {
		t.Fatalf("guesses mismatch (-want +got):\n%s", diff)
	}

	// unfiltered=true bypasses the server dictionary.
	rec = post(t, srv, map[string]any{
		"pattern":    "st???",
		"available":  "oare",
		"unfiltered": true,
	})
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Count <= 2 {
		t.Fatalf("expected more than 2 unfiltered guesses, got %d", res.Count)
	}
}

func TestGuessesLimit(t *testing.T) {
	srv := New(nil, 0)
	rec := post(t, srv, map[string]any{
		"pattern":   "?????",
		"available": "abcdefg",
		"limit":     10,
	})
	var res guessesRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Count != 10 || !res.Truncated {
		t.Fatalf("expected 10 truncated guesses, got %+v", res)
	}
}

func TestGuessesValidation(t *testing.T) {
	srv := New(nil, 0)
	cases := []struct {
		name    string
		body    map[string]any
		wantErr string
	}{
		{"malformed pattern", map[string]any{"pattern": "ab!??", "available": "cde"}, "malformed_pattern"},
		{"too many present", map[string]any{"pattern": "abcd?", "present": "xy"}, "invalid_constraint"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, srv, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal error body: %v", err)
			}
			if body["error"] != tc.wantErr {
				t.Fatalf("expected error %q, got %q", tc.wantErr, body["error"])
			}
		})
	}
}

func TestGuessesBadJSON(t *testing.T) {
	srv := New(nil, 0)
	req := httptest.NewRequest(http.MethodPost, "/guesses", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
