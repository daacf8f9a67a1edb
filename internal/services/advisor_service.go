// Package services provides business logic and orchestration services.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"wealthwise/internal/ai"
	"wealthwise/internal/cache"
	"wealthwise/internal/log"
)

// ErrSuperseded reports that a newer request of the same kind was started
// while this one was in flight, so its result must not be shown.
var ErrSuperseded = errors.New("response superseded by a newer request")

// ErrAdvisorDisabled reports that no text model client is configured.
var ErrAdvisorDisabled = errors.New("ai advisor is not configured")

// StrategyGenerator is the model-facing surface the advisor depends on.
type StrategyGenerator interface {
	GenerateInvestmentStrategy(ctx context.Context, in ai.StrategyInput) (*ai.StrategyOutput, error)
	SummarizeMarketReport(ctx context.Context, in ai.SummaryInput) (*ai.SummaryOutput, error)
}

// AdvisorService orchestrates model calls for the recommendations and
// report pages. Each capability carries a generation counter: starting a
// new call invalidates any call still in flight, and a stale result is
// dropped with ErrSuperseded instead of being returned.
type AdvisorService struct {
	client  StrategyGenerator
	timeout time.Duration
	logger  *log.Logger

	strategyGen atomic.Uint64
	summaryGen  atomic.Uint64

	flights      singleflight.Group
	summaryCache *cache.LRUCache[ai.SummaryOutput]
}

// AdvisorConfig holds advisor construction options.
type AdvisorConfig struct {
	Timeout          time.Duration
	SummaryCacheSize int
	SummaryCacheTTL  time.Duration
}

func NewAdvisorService(client StrategyGenerator, cfg AdvisorConfig, logger *log.Logger) *AdvisorService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.SummaryCacheSize <= 0 {
		cfg.SummaryCacheSize = 64
	}
	if cfg.SummaryCacheTTL <= 0 {
		cfg.SummaryCacheTTL = 15 * time.Minute
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &AdvisorService{
		client:       client,
		timeout:      cfg.Timeout,
		logger:       logger.WithComponent(log.ComponentAdvisor),
		summaryCache: cache.NewLRUCache[ai.SummaryOutput](cfg.SummaryCacheSize, cfg.SummaryCacheTTL),
	}
}

// Enabled reports whether a model client is wired in.
func (s *AdvisorService) Enabled() bool {
	return s.client != nil
}

// SummaryCache exposes the cache for cleanup registration.
func (s *AdvisorService) SummaryCache() *cache.LRUCache[ai.SummaryOutput] {
	return s.summaryCache
}

// GenerateStrategy requests a fresh investment strategy. Identical
// concurrent requests share one model call; a result that arrives after
// a newer strategy request has started is discarded.
func (s *AdvisorService) GenerateStrategy(ctx context.Context, in ai.StrategyInput) (*ai.StrategyOutput, error) {
	if s.client == nil {
		return nil, ErrAdvisorDisabled
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	gen := s.strategyGen.Add(1)
	key := "strategy:" + hashKey(in.FinancialGoals, in.RiskTolerance, in.MarketConditions)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	v, err, shared := s.flights.Do(key, func() (any, error) {
		return s.client.GenerateInvestmentStrategy(ctx, in)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Strategy generation failed",
			log.FieldOperation, log.OpGenerate,
			log.FieldGeneration, gen,
			log.FieldError, err.Error())
		return nil, fmt.Errorf("generate strategy: %w", err)
	}

	if current := s.strategyGen.Load(); current != gen {
		s.logger.InfoContext(ctx, "Discarding superseded strategy response",
			log.FieldOperation, log.OpGenerate,
			log.FieldGeneration, gen,
			"current_generation", current)
		return nil, ErrSuperseded
	}

	out := v.(*ai.StrategyOutput)
	s.logger.InfoContext(ctx, "Strategy generated",
		log.FieldOperation, log.OpGenerate,
		log.FieldGeneration, gen,
		"shared_flight", shared)
	return out, nil
}

// SummarizeReport summarizes a market report for the given investor
// profile. Summaries are cached by content so repeat requests skip the
// model; the superseded-response rule applies to uncached calls only.
func (s *AdvisorService) SummarizeReport(ctx context.Context, in ai.SummaryInput) (*ai.SummaryOutput, error) {
	if s.client == nil {
		return nil, ErrAdvisorDisabled
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key := "summary:" + hashKey(in.Report, in.UserInvestmentProfile)
	if cached, ok := s.summaryCache.Get(key); ok {
		s.logger.DebugContext(ctx, "Summary served from cache",
			log.FieldOperation, log.OpSummary,
			log.FieldCacheHit, true)
		out := cached
		return &out, nil
	}

	gen := s.summaryGen.Add(1)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	v, err, _ := s.flights.Do(key, func() (any, error) {
		return s.client.SummarizeMarketReport(ctx, in)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Report summarization failed",
			log.FieldOperation, log.OpSummary,
			log.FieldGeneration, gen,
			log.FieldError, err.Error())
		return nil, fmt.Errorf("summarize report: %w", err)
	}

	out := v.(*ai.SummaryOutput)
	s.summaryCache.Set(key, *out)

	if current := s.summaryGen.Load(); current != gen {
		s.logger.InfoContext(ctx, "Discarding superseded summary response",
			log.FieldOperation, log.OpSummary,
			log.FieldGeneration, gen,
			"current_generation", current)
		return nil, ErrSuperseded
	}

	s.logger.InfoContext(ctx, "Report summarized",
		log.FieldOperation, log.OpSummary,
		log.FieldGeneration, gen,
		log.FieldCacheHit, false)
	return out, nil
}

func hashKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
