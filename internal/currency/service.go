// Package currency maintains the base-currency exchange-rate table used
// by the financial computations. The table is never empty: it starts
// from a static fallback and is refreshed on demand from a live source,
// degrading silently to the last good data on any failure.
package currency

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"golang.org/x/sync/singleflight"
)

// DefaultBase is the reference currency all rates are normalized to.
const DefaultBase = "USD"

// DefaultTTL bounds how long a fetched table is served before a read
// triggers a refresh attempt.
const DefaultTTL = time.Hour

// Fetcher retrieves a fresh rate table: base-currency units per 1 unit
// of each code.
type Fetcher interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// Config tunes a Service. Zero values fall back to DefaultBase,
// DefaultTTL and the built-in static table.
type Config struct {
	Base   string
	TTL    time.Duration
	Static map[string]float64
}

// Service is the process-lifetime rate cache. All methods are safe for
// concurrent use; stale reads share a single in-flight refresh.
type Service struct {
	logger  *slog.Logger
	fetcher Fetcher
	base    string
	ttl     time.Duration

	mu        sync.RWMutex
	rates     map[string]float64
	fetchedAt time.Time // zero until the first successful refresh

	sf singleflight.Group
}

// NewService builds a Service seeded with the static fallback table.
// fetcher may be nil, in which case the service serves static data only.
func NewService(cfg Config, fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Base == "" {
		cfg.Base = DefaultBase
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	static := cfg.Static
	if static == nil {
		static = DefaultRates()
	}
	rates := make(map[string]float64, len(static))
	for code, rate := range static {
		rates[strings.ToUpper(code)] = rate
	}
	rates[cfg.Base] = 1
	return &Service{
		logger:  logger,
		fetcher: fetcher,
		base:    cfg.Base,
		ttl:     cfg.TTL,
		rates:   rates,
	}
}

// Base returns the reference currency code.
func (s *Service) Base() string { return s.base }

// Rate returns base-currency units per 1 unit of code, or 0 for a code
// the table does not know. A read past the TTL triggers one refresh
// attempt first.
func (s *Service) Rate(ctx context.Context, code string) float64 {
	s.ensureFresh(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates[strings.ToUpper(strings.TrimSpace(code))]
}

// ToBase converts an amount in code to the base currency.
func (s *Service) ToBase(ctx context.Context, amount float64, code string) float64 {
	return amount * s.Rate(ctx, code)
}

// FromBase converts a base-currency amount to code. An unknown code
// yields 0 rather than a division by zero.
func (s *Service) FromBase(ctx context.Context, amount float64, code string) float64 {
	r := s.Rate(ctx, code)
	if r == 0 {
		return 0
	}
	return amount / r
}

// Codes returns the currency codes currently in the table, unordered.
func (s *Service) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	return codes
}

// Refresh fetches a fresh table now. Failures are logged and swallowed:
// the previous table keeps serving. Concurrent callers share one fetch.
func (s *Service) Refresh(ctx context.Context) {
	if s.fetcher == nil {
		return
	}
	s.sf.Do("refresh", func() (any, error) {
		s.fetch(ctx)
		return nil, nil
	})
}

func (s *Service) ensureFresh(ctx context.Context) {
	if s.fetcher == nil || s.fresh() {
		return
	}
	s.sf.Do("refresh", func() (any, error) {
		// Re-check inside the flight: a refresh that completed while we
		// queued makes this call a no-op.
		if !s.fresh() {
			s.fetch(ctx)
		}
		return nil, nil
	})
}

func (s *Service) fresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.fetchedAt) < s.ttl
}

func (s *Service) fetch(ctx context.Context) {
	fetched, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("currency.refresh.failed", "error", err)
		return
	}
	rates := make(map[string]float64, len(fetched)+1)
	for code, rate := range fetched {
		code = strings.ToUpper(strings.TrimSpace(code))
		if money.GetCurrency(code) == nil {
			s.logger.Warn("currency.refresh.unknown_code", "code", code)
			continue
		}
		if rate <= 0 {
			s.logger.Warn("currency.refresh.bad_rate", "code", code, "rate", rate)
			continue
		}
		rates[code] = rate
	}
	if len(rates) == 0 {
		s.logger.Warn("currency.refresh.empty_table")
		return
	}
	rates[s.base] = 1
	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	s.logger.Info("currency.refresh.ok", "codes", len(rates))
}
