package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/fxlens/fxlens_backend/internal/metrics"
)

// loadCall is one in-flight fetch shared by every caller that arrived while
// it was pending.
type loadCall struct {
	attempt uint64
	done    chan struct{}
	catalog *domain.Catalog
	err     error
}

// CatalogService owns the currency catalog snapshot. The snapshot is
// replaced wholesale by a single assignment under the mutex; a failed fetch
// never touches it. Concurrent Load calls coalesce onto one pending fetch,
// and Reload supersedes an in-flight attempt: commits are keyed by a
// monotonically increasing attempt counter so a stale result arriving after
// a newer commit is discarded.
type CatalogService struct {
	source ports.CatalogSource

	mu        sync.Mutex
	current   *domain.Catalog
	pending   *loadCall
	attempt   uint64
	committed uint64
}

func NewCatalogService(source ports.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// Current returns the latest successfully loaded snapshot.
func (s *CatalogService) Current() (*domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, apperrors.ErrCatalogNotLoaded
	}
	return s.current, nil
}

// Load is idempotent: once a snapshot exists it is returned without another
// fetch. Callers that arrive during an in-flight load wait for that load's
// result instead of triggering a duplicate fetch.
func (s *CatalogService) Load(ctx context.Context) (*domain.Catalog, error) {
	s.mu.Lock()
	if s.current != nil {
		cat := s.current
		s.mu.Unlock()
		return cat, nil
	}
	if s.pending != nil {
		call := s.pending
		s.mu.Unlock()
		return s.await(ctx, call)
	}
	call := s.begin()
	s.mu.Unlock()

	s.run(ctx, call)
	return call.catalog, call.err
}

// Reload always fetches. It starts a new attempt even when one is in
// flight; whichever attempt commits later wins, and the earlier one is
// dropped if it straggles in afterwards.
func (s *CatalogService) Reload(ctx context.Context) (*domain.Catalog, error) {
	s.mu.Lock()
	call := s.begin()
	s.mu.Unlock()

	s.run(ctx, call)
	return call.catalog, call.err
}

// begin registers a new attempt as the pending call. Caller holds s.mu.
func (s *CatalogService) begin() *loadCall {
	s.attempt++
	call := &loadCall{attempt: s.attempt, done: make(chan struct{})}
	s.pending = call
	return call
}

func (s *CatalogService) run(ctx context.Context, call *loadCall) {
	start := time.Now()
	groups, popular, err := s.source.Fetch(ctx)

	var cat *domain.Catalog
	if err == nil {
		cat, err = domain.NewCatalog(groups, popular)
	}

	s.mu.Lock()
	if err == nil {
		if call.attempt > s.committed {
			s.current = cat
			s.committed = call.attempt
			call.catalog = cat
		} else {
			// A newer attempt already committed; serve its snapshot and
			// drop this result.
			call.catalog = s.current
		}
	} else {
		call.err = fmt.Errorf("catalog load failed: %w", err)
	}
	if s.pending == call {
		s.pending = nil
	}
	s.mu.Unlock()

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CatalogLoadsTotal.WithLabelValues(result).Inc()
	metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())

	close(call.done)
}

// await blocks on an in-flight call, honouring the waiter's own context.
func (s *CatalogService) await(ctx context.Context, call *loadCall) (*domain.Catalog, error) {
	select {
	case <-call.done:
		return call.catalog, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
