package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/eletronicos-be/internal/testutil"
)

func TestHealth(t *testing.T) {
	for name, tc := range map[string]struct {
		db     Pinger
		status int
		state  string
	}{
		"up":   {testutil.OpenStore(t), http.StatusOK, "ok"},
		"down": {&stubStore{err: errDiskIO}, http.StatusServiceUnavailable, "unreachable"},
	} {
		t.Run(name, func(t *testing.T) {
			r := chi.NewRouter()
			NewHealthHandler(time.Now().Add(-time.Minute), tc.db).Register(r)

			rec := testutil.Serve(r, testutil.NewJSONRequest(t, http.MethodGet, "/health", nil, ""))
			require.Equal(t, tc.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.state, body["database"])
			assert.NotEmpty(t, body["uptime"])
		})
	}
}
