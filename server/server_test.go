package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
)

type fakeDispatcher struct {
	calls int
	last  *alexa.RequestEnvelope
}

func (f *fakeDispatcher) Dispatch(_ context.Context, env *alexa.RequestEnvelope) alexa.ResponseEnvelope {
	f.calls++
	f.last = env
	return alexa.ResponseEnvelope{
		Version:  "1.0",
		Response: alexa.NewBuilder().Speak("hola").Build(),
	}
}

func TestWebhookDispatchesEnvelope(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{}
	router := NewRouter(dispatcher)

	body := `{"version":"1.0","session":{"new":true,"sessionId":"sess-1"},"request":{"type":"LaunchRequest"}}`
	req := httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if dispatcher.calls != 1 {
		t.Fatalf("dispatches = %d, want 1", dispatcher.calls)
	}
	if dispatcher.last.Request.Type != alexa.RequestTypeLaunch {
		t.Fatalf("request type = %q, want LaunchRequest", dispatcher.last.Request.Type)
	}

	var out alexa.ResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Response.OutputSpeech == nil || out.Response.OutputSpeech.Text != "hola" {
		t.Fatalf("response = %+v, want dispatcher speech", out.Response)
	}
}

func TestWebhookRejectsBadJSON(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{}
	router := NewRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if dispatcher.calls != 0 {
		t.Fatalf("dispatches = %d, want 0", dispatcher.calls)
	}
}

func TestWebhookMethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := NewRouter(&fakeDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/alexa", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.Code)
	}
}
