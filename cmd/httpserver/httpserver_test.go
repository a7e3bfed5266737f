package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bank-ledger/internal/middleware"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
)

func TestRoot(t *testing.T) {
	config := configpkg.Config{APIKey: "test-api-key"}

	// The root route touches no repository, so no db connection is needed.
	server, err := New(nil, zerolog.Nop(), config)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	middleware.AddAuthorization(req, config.APIKey)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	require.Equal(t, "Bank Ledger API", res.Message)
	require.NotEmpty(t, res.Version)

	for _, route := range []string{"create_account", "deposit", "withdraw", "balance", "transactions"} {
		require.Contains(t, res.Endpoints, route)
	}
}

func TestRootUnauthorized(t *testing.T) {
	config := configpkg.Config{APIKey: "test-api-key"}

	server, err := New(nil, zerolog.Nop(), config)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
