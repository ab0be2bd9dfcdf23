package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// MyMemory calls the public MyMemory API. Free, no key required.
type MyMemory struct {
	URL    string
	client *http.Client
}

func NewMyMemory(apiURL string) *MyMemory {
	return &MyMemory{
		URL:    apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MyMemory) Name() string { return "mymemory" }

func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", source, target))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory %d: %s", resp.StatusCode, preview(bodyBytes))
	}

	var mm struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.Unmarshal(bodyBytes, &mm); err != nil {
		return "", fmt.Errorf("invalid JSON from mymemory: %v; body: %s", err, preview(bodyBytes))
	}

	// MyMemory reports failures in-band with an HTTP 200.
	if mm.ResponseStatus != http.StatusOK {
		if mm.ResponseDetails != "" {
			return "", fmt.Errorf("mymemory error: %s", mm.ResponseDetails)
		}
		return "", fmt.Errorf("mymemory status %d", mm.ResponseStatus)
	}

	if mm.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("mymemory returned empty translation")
	}
	return mm.ResponseData.TranslatedText, nil
}
