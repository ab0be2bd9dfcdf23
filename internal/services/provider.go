package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingInput means text, source, or target was empty; no provider is
	// contacted in that case.
	ErrMissingInput = errors.New("text, source and target are required")
	// ErrAllProvidersFailed means every configured provider was tried and none
	// produced a translation.
	ErrAllProvidersFailed = errors.New("all translation services failed")
)

// Provider is one external translation backend. A call either yields the
// translated text or an error; the chain never retries a provider within a
// single request.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Chain tries providers strictly in priority order and returns the first
// success. Adding or reordering providers is a data change at construction.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
		return "", ErrMissingInput
	}

	for _, p := range c.providers {
		translated, err := p.Translate(ctx, text, source, target)
		if err != nil {
			logrus.WithError(err).WithField("provider", p.Name()).Warn("translation provider failed")
			continue
		}
		if strings.TrimSpace(translated) == "" {
			logrus.WithField("provider", p.Name()).Warn("translation provider returned empty text")
			continue
		}
		return translated, nil
	}

	return "", ErrAllProvidersFailed
}
