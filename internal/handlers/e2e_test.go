package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devtemiloluwa/translator-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full walk through the application surface with real provider adapters
// pointed at local fakes: the primary provider is down, the secondary answers.
func TestEndToEndScenario(t *testing.T) {
	primarySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "offline for maintenance", http.StatusServiceUnavailable)
	}))
	defer primarySrv.Close()

	secondarySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"hola"},"responseStatus":200}`))
	}))
	defer secondarySrv.Close()

	chain := services.NewChain(
		services.NewLibreTranslate(primarySrv.URL, ""),
		services.NewMyMemory(secondarySrv.URL),
	)
	env := newTestEnv(t, chain)

	// Signup.
	resp, body := doJSON(t, env.app, http.MethodPost, "/api/v1/auth/signup",
		fiber.Map{"name": "Ann", "email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["userId"])

	// Same email again.
	resp, _ = doJSON(t, env.app, http.MethodPost, "/api/v1/auth/signup",
		fiber.Map{"name": "Ann", "email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Login.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/v1/auth/login",
		fiber.Map{"email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	// Translate; the primary fails so the secondary's text comes back.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/v1/translate",
		fiber.Map{"text": "hello", "source": "en", "target": "es"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hola", body["translatedText"])

	// One record in history.
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/v1/translations", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["translations"].([]any)
	require.Len(t, list, 1)
	record := list[0].(map[string]any)
	assert.Equal(t, "hola", record["translatedText"])

	// Delete it.
	resp, _ = doJSON(t, env.app, http.MethodDelete,
		"/api/v1/translations/"+record["id"].(string), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// History is empty again.
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/v1/translations", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["translations"])
}
