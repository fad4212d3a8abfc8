package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/models"
	"github.com/threadchain/threadchain/internal/repository"
)

// DefaultSearchDebounce bounds remote search request volume.
const DefaultSearchDebounce = 300 * time.Millisecond

// searcher debounces remote post searches. A newly issued search
// supersedes any in-flight one: every request takes a sequence number
// and a response is dropped unless its sequence is still the latest,
// so a stale response can never overwrite fresher results.
type searcher struct {
	mu       sync.Mutex
	remote   repository.RemoteStore
	debounce time.Duration
	timer    *time.Timer
	seq      uint64
	apply    func(query string, posts []models.Post)
	logger   *zap.Logger
}

func newSearcher(remote repository.RemoteStore, debounce time.Duration, apply func(string, []models.Post), logger *zap.Logger) *searcher {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &searcher{
		remote:   remote,
		debounce: debounce,
		apply:    apply,
		logger:   logger,
	}
}

// Search schedules a remote search after the debounce window,
// cancelling any pending one.
func (s *searcher) Search(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, query, seq)
	})
}

func (s *searcher) run(ctx context.Context, query string, seq uint64) {
	if s.remote == nil || !s.latest(seq) {
		return
	}

	posts, err := s.remote.SearchPosts(ctx, query)
	if err != nil {
		s.logger.Warn("Remote search failed", zap.String("query", query), zap.Error(err))
		return
	}

	// A newer query may have been issued while this one was in flight.
	if !s.latest(seq) {
		return
	}

	s.apply(query, posts)
}

func (s *searcher) latest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}
