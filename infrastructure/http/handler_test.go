package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pharmabot/ai"
	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain/profiles"
	"pharmabot/knowledge"
	"pharmabot/mocks"
	"pharmabot/observability"
	"pharmabot/runtime"
	"pharmabot/services"
	"pharmabot/validate"
)

func newTestRouter(t *testing.T, backends ...ai.Generator) http.Handler {
	t.Helper()
	profile, err := profiles.ByName("pharma")
	require.NoError(t, err)
	classifier, err := classify.NewClassifier(profile)
	require.NoError(t, err)
	base, err := knowledge.NewBase(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = base.Close() })

	monitor := observability.NewMonitor()
	orch := runtime.NewOrchestrator(slog.Default(), profile, classifier,
		canned.NewTable(profile), base, validate.NewValidator(classifier, false),
		backends, monitor, 1)
	return Router(NewHandler(services.NewChatService(orch, monitor), slog.Default()))
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req.WithContext(context.Background()))
	return rec
}

func TestHandler_HealthAlways200(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	req.Equal(http.StatusOK, rec.Code)

	var payload healthResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	req.Equal("healthy", payload.Status)
	req.False(payload.ModelLoaded)
	req.Equal("none", payload.ModelType)
}

func TestHandler_HealthReportsBackends(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockGenerator(ctrl)
	backend.EXPECT().Available().Return(true).AnyTimes()
	backend.EXPECT().Name().Return("openai").AnyTimes()

	router := newTestRouter(t, backend)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var payload healthResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	req.True(payload.ModelLoaded)
	req.Equal("openai", payload.ModelType)
	req.Equal([]string{"openai"}, payload.Backends)
}

func TestHandler_ChatRejectsEmptyMessage(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		rec := postChat(t, router, body)
		req.Equal(http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestHandler_ChatGreetingWithoutBackend(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	rec := postChat(t, router, `{"message":"bonjour"}`)
	req.Equal(http.StatusOK, rec.Code)

	var payload chatResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	req.Equal("Bonjour! Comment puis-je vous aider aujourd'hui?", payload.Reply)
	req.Equal(len(strings.Fields(payload.Reply)), payload.Usage.Tokens)
	req.Equal("none", payload.Usage.Model)
}

func TestHandler_ChatKnowledgeAnswerWithoutBackend(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	rec := postChat(t, router, `{"message":"Quels sont les effets secondaires de l'amoxicilline ?"}`)
	req.Equal(http.StatusOK, rec.Code)

	var payload chatResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	req.Contains(payload.Reply, "Effets secondaires de Amoxicilline")
}

func TestHandler_ChatUnavailableWhenNoBackendAndNoDeterministicAnswer(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	rec := postChat(t, router, `{"message":"Comment soigner une infection ?"}`)
	req.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_ChatGeneratedReplyCarriesUsage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockGenerator(ctrl)
	backend.EXPECT().Available().Return(true).AnyTimes()
	backend.EXPECT().Name().Return("openai").AnyTimes()
	backend.EXPECT().Model().Return("gpt-3.5-turbo").AnyTimes()
	backend.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("Le paracétamol est un médicament utilisé contre la douleur et la fièvre.", nil)

	router := newTestRouter(t, backend)
	rec := postChat(t, router, `{"message":"Parlez-moi du traitement de la douleur, quel médicament choisir ?","history":[{"role":"user","content":"bonjour"}]}`)
	req.Equal(http.StatusOK, rec.Code)

	var payload chatResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	req.Equal("Le paracétamol est un médicament utilisé contre la douleur et la fièvre.", payload.Reply)
	req.Equal("gpt-3.5-turbo", payload.Usage.Model)
	req.Equal(12, payload.Usage.Tokens)
}

func TestHandler_CORSPreflight(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	preflight := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	preflight.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(rec, preflight)

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}
