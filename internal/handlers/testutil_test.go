package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"github.com/devtemiloluwa/translator-app/internal/services"
	"github.com/devtemiloluwa/translator-app/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type testEnv struct {
	app          *fiber.App
	handler      *Handler
	users        *store.MemoryUserStore
	translations *store.MemoryTranslationStore
}

func newTestEnv(t *testing.T, chain *services.Chain) *testEnv {
	t.Helper()

	users := store.NewMemoryUserStore()
	translations := store.NewMemoryTranslationStore()
	h := New(users, translations, chain, testSecret)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h.RegisterRoutes(app)

	return &testEnv{app: app, handler: h, users: users, translations: translations}
}

// stubProvider returns a fixed translation or error.
type stubProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Translate(context.Context, string, string, string) (string, error) {
	s.calls++
	return s.text, s.err
}

func workingChain(text string) *services.Chain {
	return services.NewChain(&stubProvider{name: "stub", text: text})
}

func brokenChain() *services.Chain {
	return services.NewChain(
		&stubProvider{name: "primary", err: errors.New("down")},
		&stubProvider{name: "secondary", err: errors.New("down")},
	)
}

// failingTranslationStore rejects every write; reads and deletes are not used
// where it is installed.
type failingTranslationStore struct{}

func (failingTranslationStore) Save(context.Context, models.Translation) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errors.New("store down")
}

func (failingTranslationStore) ListByUser(context.Context, primitive.ObjectID) ([]models.Translation, error) {
	return nil, errors.New("store down")
}

func (failingTranslationStore) Delete(context.Context, primitive.ObjectID, primitive.ObjectID) error {
	return errors.New("store down")
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func signupAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup",
		fiber.Map{"name": name, "email": email, "password": password}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		fiber.Map{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
