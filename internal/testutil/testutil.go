// Package testutil holds helpers shared by package tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/hongminglow/eletronicos-be/internal/auth"
	"github.com/hongminglow/eletronicos-be/internal/storage/sqlite"
)

// Secret signs tokens in tests.
const Secret = "test-secret"

// OpenStore opens a sqlite store in a fresh temp directory, closed on cleanup.
func OpenStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Tokens returns a TokenManager signed with Secret and a one-hour TTL.
func Tokens(opts ...auth.Option) *auth.TokenManager {
	return auth.NewTokenManager(Secret, "", time.Hour, opts...)
}

// IssueToken returns a signed token for the identity.
func IssueToken(t *testing.T, tokens *auth.TokenManager, id auth.Identity) string {
	t.Helper()
	tok, err := tokens.Generate(id)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// NewJSONRequest builds a request with body marshalled as JSON and, when
// token is non-empty, a bearer Authorization header.
func NewJSONRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// Serve runs req through h and returns the recorded response.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
