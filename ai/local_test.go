package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	pherrors "pharmabot/errors"
)

func newLocalServer(t *testing.T, installed []string, reply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		models := make([]map[string]string, 0, len(installed))
		for _, name := range installed {
			models = append(models, map[string]string{"name": name})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"models": models})
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var payload localGenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.False(t, payload.Stream)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": reply})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLocal_LoadPicksPrimaryModel(t *testing.T) {
	req := require.New(t)
	server := newLocalServer(t, []string{"mistral:7b", "phi3:mini"}, "La metformine est un antidiabétique.")

	backend := NewLocal(server.URL, "mistral:7b", "phi3:mini", server.Client(), slog.Default())
	req.Equal(StateUninitialized, backend.State())
	req.False(backend.Available())

	req.NoError(backend.Load(context.Background()))
	req.Equal(StateReady, backend.State())
	req.Equal("mistral:7b", backend.Model())

	reply, err := backend.Generate(context.Background(), Request{Message: "la metformine ?"})
	req.NoError(err)
	req.Equal("La metformine est un antidiabétique.", reply)
}

func TestLocal_LoadFallsBackWhenPrimaryMissing(t *testing.T) {
	req := require.New(t)
	server := newLocalServer(t, []string{"phi3:mini"}, "")

	backend := NewLocal(server.URL, "mistral:7b", "phi3:mini", server.Client(), slog.Default())
	req.NoError(backend.Load(context.Background()))
	req.Equal("phi3:mini", backend.Model())
}

func TestLocal_LoadFailsWithoutUsableModel(t *testing.T) {
	req := require.New(t)
	server := newLocalServer(t, nil, "")

	backend := NewLocal(server.URL, "mistral:7b", "phi3:mini", server.Client(), slog.Default())
	err := backend.Load(context.Background())
	req.ErrorIs(err, pherrors.ErrModelNotReady)
	req.Equal(StateFailed, backend.State())
	req.False(backend.Available())

	_, err = backend.Generate(context.Background(), Request{Message: "bonjour"})
	req.ErrorIs(err, pherrors.ErrModelNotReady)
}

func TestLocal_LoadIsIdempotentOnceReady(t *testing.T) {
	req := require.New(t)
	server := newLocalServer(t, []string{"mistral:7b"}, "")

	backend := NewLocal(server.URL, "mistral:7b", "", server.Client(), slog.Default())
	req.NoError(backend.Load(context.Background()))

	server.Close()
	// Le serveur est coupé : un Load déjà prêt ne re-sonde pas.
	req.NoError(backend.Load(context.Background()))
	req.Equal(StateReady, backend.State())
}
