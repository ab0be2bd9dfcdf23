package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibreTranslateSuccess(t *testing.T) {
	var got libreTranslateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(libreTranslateResponse{TranslatedText: "hola"})
	}))
	defer srv.Close()

	p := NewLibreTranslate(srv.URL, "key-123")
	out, err := p.Translate(context.Background(), "hello", "EN", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", out)

	assert.Equal(t, "hello", got.Q)
	assert.Equal(t, "en", got.Source, "language tags are lowercased")
	assert.Equal(t, "es", got.Target)
	assert.Equal(t, "text", got.Format)
	assert.Equal(t, "key-123", got.APIKey)
}

func TestLibreTranslateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewLibreTranslate(srv.URL, "")
	_, err := p.Translate(context.Background(), "hello", "en", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLibreTranslateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Cloudflare-style HTML with a 200.
		w.Write([]byte("<html>blocked</html>"))
	}))
	defer srv.Close()

	p := NewLibreTranslate(srv.URL, "")
	_, err := p.Translate(context.Background(), "hello", "en", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLibreTranslateEmptyTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(libreTranslateResponse{TranslatedText: ""})
	}))
	defer srv.Close()

	p := NewLibreTranslate(srv.URL, "")
	_, err := p.Translate(context.Background(), "hello", "en", "es")
	require.Error(t, err)
}

func TestLibreTranslateConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewLibreTranslate(srv.URL, "")
	_, err := p.Translate(context.Background(), "hello", "en", "es")
	require.Error(t, err)
}
