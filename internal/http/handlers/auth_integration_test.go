package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/hongminglow/eletronicos-be/internal/auth"
	"github.com/hongminglow/eletronicos-be/internal/logging"
	"github.com/hongminglow/eletronicos-be/internal/storage/postgres"
)

// TestAuthIntegration exercises the registro/login endpoints against a live Postgres database.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	secret := mustGetEnv(t, "JWT_SECRET")
	tokens := auth.NewTokenManager(secret, os.Getenv("JWT_ISSUER"), mustGetTTL(t))

	r := chi.NewRouter()
	NewAuthHandler(store, tokens, 0, logging.Discard()).Register(r)

	ts := httptest.NewServer(r)
	defer ts.Close()

	username := fmt.Sprintf("apitest_%d", time.Now().UnixNano())
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())
	registerBody := map[string]string{
		"username": username,
		"password": password,
		"role":     "admin",
	}

	if status := postJSON(t, ts.URL+"/registro", registerBody, nil); status != http.StatusCreated {
		t.Fatalf("register status = %d", status)
	}
	if status := postJSON(t, ts.URL+"/registro", registerBody, nil); status != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", status)
	}

	var loggedIn loginResponseBody
	status := postJSON(t, ts.URL+"/login", map[string]string{"username": username, "password": password}, &loggedIn)
	if status != http.StatusOK {
		t.Fatalf("login status = %d", status)
	}
	if strings.TrimSpace(loggedIn.Token) == "" {
		t.Fatal("login response missing token")
	}
	id, err := tokens.Parse(loggedIn.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if id.Username != username || id.Role != "admin" {
		t.Fatalf("token identity mismatch: %+v", id)
	}

	t.Logf("created user %s (id=%d) and successfully logged in via /login", username, id.ID)
}

type loginResponseBody struct {
	Token string `json:"token"`
}

func postJSON(t *testing.T, url string, payload any, out any) int {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func mustGetEnv(t *testing.T, key string) string {
	t.Helper()
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		t.Fatalf("%s is required", key)
	}
	return val
}

func mustGetTTL(t *testing.T) time.Duration {
	t.Helper()
	minutesStr := strings.TrimSpace(os.Getenv("JWT_TTL_MINUTES"))
	if minutesStr == "" {
		return time.Hour
	}
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 {
		t.Fatalf("invalid JWT_TTL_MINUTES value: %q", minutesStr)
	}
	return time.Duration(minutes) * time.Minute
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
