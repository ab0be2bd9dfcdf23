package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format,omitempty"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// LibreTranslate calls a LibreTranslate-compatible endpoint.
type LibreTranslate struct {
	URL    string
	APIKey string
	client *http.Client
}

func NewLibreTranslate(url, apiKey string) *LibreTranslate {
	return &LibreTranslate{
		URL:    url,
		APIKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *LibreTranslate) Name() string { return "libretranslate" }

func (l *LibreTranslate) Translate(ctx context.Context, text, source, target string) (string, error) {
	reqBody := libreTranslateRequest{
		Q:      text,
		Source: strings.ToLower(strings.TrimSpace(source)),
		Target: strings.ToLower(strings.TrimSpace(target)),
		Format: "text",
		APIKey: l.APIKey,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("libretranslate %d: %s", resp.StatusCode, preview(bodyBytes))
	}

	var result libreTranslateResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		// Some mirrors return HTML error pages with a 200.
		return "", fmt.Errorf("invalid JSON from libretranslate: %v; body: %s", err, preview(bodyBytes))
	}

	if strings.TrimSpace(result.TranslatedText) == "" {
		return "", fmt.Errorf("libretranslate returned empty translation")
	}
	return result.TranslatedText, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 500 {
		return s[:500] + "..."
	}
	return s
}
