package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"StockCompass/internal/model"
)

// ErrAllProvidersFailed is returned when every registered provider,
// including the mock, failed to produce a result.
var ErrAllProvidersFailed = errors.New("all ai providers failed")

const (
	maxRetries     = 2
	retryBaseDelay = 1000 * time.Millisecond
	retryBackoff   = 2
)

// ProviderStatus is a snapshot of one registered provider.
type ProviderStatus struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Available bool   `json:"available"`
	LastError string `json:"lastError,omitempty"`
}

// Manager holds an ordered provider chain: the primary first, then
// fallbacks in registration order, with the deterministic mock always
// last. Each call walks the chain until one provider answers.
type Manager struct {
	mu        sync.RWMutex
	providers []Provider

	// sleep is replaced in tests to skip real backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewManager builds the provider chain. A nil primary is allowed; the
// mock provider is appended so the chain is never empty.
func NewManager(primary Provider, fallbacks ...Provider) *Manager {
	m := &Manager{sleep: sleepCtx}
	if primary != nil {
		m.providers = append(m.providers, primary)
	}
	for _, p := range fallbacks {
		if p != nil {
			m.providers = append(m.providers, p)
		}
	}
	m.providers = append(m.providers, NewMockProvider())
	return m
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// attemptWithRetry runs fn up to 1+maxRetries times against a single
// provider, backing off 1s, 2s between attempts.
func (m *Manager) attemptWithRetry(ctx context.Context, name string, fn func() error) error {
	var lastErr error
	delay := retryBaseDelay
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[WARN] ai provider %s attempt %d/%d after %v: %v",
				name, attempt+1, maxRetries+1, delay, lastErr)
			if err := m.sleep(ctx, delay); err != nil {
				return err
			}
			delay *= retryBackoff
		}
		if err := fn(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// AnalyzeSentiment walks the provider chain. Unavailable providers are
// skipped without burning retries; each available provider gets its
// full retry budget before the next one is tried.
func (m *Manager) AnalyzeSentiment(ctx context.Context, topic string) (*model.SentimentResult, error) {
	m.mu.RLock()
	providers := make([]Provider, len(m.providers))
	copy(providers, m.providers)
	m.mu.RUnlock()

	var errs []error
	for _, p := range providers {
		if err := p.CheckStatus(ctx); err != nil {
			log.Printf("[WARN] ai provider %s unavailable, skipping: %v", p.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		var result *model.SentimentResult
		err := m.attemptWithRetry(ctx, p.Name(), func() error {
			r, err := p.AnalyzeSentiment(ctx, topic)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
		if err != nil {
			log.Printf("[WARN] ai provider %s exhausted for sentiment %q: %v", p.Name(), topic, err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, errors.Join(errs...))
}

// Recommend walks the provider chain for a ranked pick list.
func (m *Manager) Recommend(ctx context.Context, tickers []string) (*RecommendationResult, error) {
	m.mu.RLock()
	providers := make([]Provider, len(m.providers))
	copy(providers, m.providers)
	m.mu.RUnlock()

	var errs []error
	for _, p := range providers {
		if err := p.CheckStatus(ctx); err != nil {
			log.Printf("[WARN] ai provider %s unavailable, skipping: %v", p.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		var result *RecommendationResult
		err := m.attemptWithRetry(ctx, p.Name(), func() error {
			r, err := p.Recommend(ctx, tickers)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
		if err != nil {
			log.Printf("[WARN] ai provider %s exhausted for recommendation: %v", p.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, errors.Join(errs...))
}

// Status probes every provider and reports availability in chain order.
func (m *Manager) Status(ctx context.Context) []ProviderStatus {
	m.mu.RLock()
	providers := make([]Provider, len(m.providers))
	copy(providers, m.providers)
	m.mu.RUnlock()

	statuses := make([]ProviderStatus, 0, len(providers))
	for i, p := range providers {
		role := "fallback"
		if i == 0 && len(providers) > 1 {
			role = "primary"
		}
		if p.Name() == "mock" {
			role = "mock"
		}
		s := ProviderStatus{Name: p.Name(), Role: role, Available: true}
		if err := p.CheckStatus(ctx); err != nil {
			s.Available = false
			s.LastError = err.Error()
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// ActiveProvider returns the first provider whose status check passes.
// The mock is last, so this never fails.
func (m *Manager) ActiveProvider(ctx context.Context) Provider {
	m.mu.RLock()
	providers := make([]Provider, len(m.providers))
	copy(providers, m.providers)
	m.mu.RUnlock()

	for _, p := range providers {
		if err := p.CheckStatus(ctx); err == nil {
			return p
		}
	}
	return providers[len(providers)-1]
}
