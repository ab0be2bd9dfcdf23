package services

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// breakerProvider wraps a Provider with a circuit breaker so a provider that
// keeps failing is skipped cheaply until it recovers. An open breaker surfaces
// as an ordinary provider error, so the chain just moves on.
type breakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// WithBreaker decorates p. The breaker opens after 5 consecutive failures and
// allows a probe call after 30 seconds.
func WithBreaker(p Provider) Provider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &breakerProvider{inner: p, cb: cb}
}

func (b *breakerProvider) Name() string { return b.inner.Name() }

func (b *breakerProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text, source, target)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
