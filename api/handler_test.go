package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/xiaot623/farmchat/api"
	"github.com/xiaot623/farmchat/domain"
	"github.com/xiaot623/farmchat/intent"
	"github.com/xiaot623/farmchat/llm"
	"github.com/xiaot623/farmchat/policy"
	"github.com/xiaot623/farmchat/service"
	"github.com/xiaot623/farmchat/store"
)

type fixedWeather struct{}

func (fixedWeather) Fetch(location, lang string) string {
	return "WEATHER_API_DATA_ERROR: Weather info unavailable: API key missing or invalid."
}

// newTestHandler wires a handler against a fake model server that streams
// the given fragments then done.
func newTestHandler(t *testing.T, fragments ...string) *api.Handler {
	t.Helper()

	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, f := range fragments {
			chunk, _ := json.Marshal(llm.ChatChunk{Message: &llm.Message{Role: "assistant", Content: f}})
			fmt.Fprintf(w, "%s\n", chunk)
		}
		fmt.Fprint(w, "{\"done\":true}\n")
	}))
	t.Cleanup(model.Close)

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	assert.NoError(t, err)

	llmClient := llm.NewClient(model.URL, "llama3", time.Second, 0.5, 40, 0.9)
	svc := service.New(store.NewMemoryStore(0, 0), fixedWeather{}, llmClient, intent.NewKeywordClassifier(), engine)
	return api.NewHandler(svc)
}

func postAsk(t *testing.T, h *api.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Ask(c)
	assert.NoError(t, err)
	return rec
}

func TestAskNonJSONBody(t *testing.T) {
	h := newTestHandler(t, "unused")

	rec := postAsk(t, h, "not json at all")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Request must be JSON", resp["error"])
}

func TestAskEmptyPrompt(t *testing.T) {
	h := newTestHandler(t, "unused")

	rec := postAsk(t, h, `{"prompt":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Prompt is required", resp["error"])
}

func TestAskSuccess(t *testing.T) {
	h := newTestHandler(t, "Use", " drip", " irrigation.")

	rec := postAsk(t, h, `{"prompt":"how to water tomato plants"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AskResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Use drip irrigation.", resp.Response)
}

func TestAskDownstreamFailureStillOK(t *testing.T) {
	// Model server is unreachable; the endpoint must still answer 200 with
	// a fallback sentence.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	assert.NoError(t, err)
	llmClient := llm.NewClient(dead.URL, "llama3", time.Second, 0.5, 40, 0.9)
	svc := service.New(store.NewMemoryStore(0, 0), fixedWeather{}, llmClient, intent.NewKeywordClassifier(), engine)
	h := api.NewHandler(svc)

	rec := postAsk(t, h, `{"prompt":"any question","session_id":"s1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AskResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, llm.FallbackMessage(llm.FailureConnection, ""), resp.Response)
}

func TestGetSessionMessages(t *testing.T) {
	h := newTestHandler(t, "answer")

	rec := postAsk(t, h, `{"prompt":"soil health tips","session_id":"s1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s1/messages", nil)
	mrec := httptest.NewRecorder()
	c := e.NewContext(req, mrec)
	c.SetParamNames("session_id")
	c.SetParamValues("s1")

	assert.NoError(t, h.GetSessionMessages(c))
	assert.Equal(t, http.StatusOK, mrec.Code)

	var resp struct {
		Messages []domain.Turn `json:"messages"`
	}
	assert.NoError(t, json.Unmarshal(mrec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Messages, 2) {
		assert.Equal(t, domain.RoleUser, resp.Messages[0].Role)
		assert.Equal(t, domain.RoleAssistant, resp.Messages[1].Role)
	}
}

func TestGetSessionMessagesUnknownSession(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/nope/messages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("nope")

	assert.NoError(t, h.GetSessionMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"messages":[]`)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
