package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/models"
	"github.com/threadchain/threadchain/internal/repository"
	"github.com/threadchain/threadchain/pkg/logging"
)

// DataSource reports where the canonical collection came from.
type DataSource string

// Data source constants
const (
	DataSourceRemote DataSource = "remote"
	DataSourceSeed   DataSource = "seed"
)

// Store holds the in-memory canonical post collection for the session.
// It is the single source of truth mutated by optimistic local actions;
// mutators apply synchronously without waiting for network
// confirmation. All mutators fail closed: on any error the
// pre-operation state is preserved exactly.
type Store struct {
	mu         sync.Mutex
	posts      []models.Post
	dataSource DataSource
	logger     *zap.Logger
}

// NewStore constructs the store and populates it from the remote
// store. A fetch failure or an empty remote collection degrades to the
// fixed seed dataset; seed and remote records are never mixed.
func NewStore(ctx context.Context, remote repository.RemoteStore) *Store {
	s := &Store{
		logger: logging.GetLogger().With(zap.String("component", "post-store")),
	}

	if remote != nil {
		posts, err := remote.ListPosts(ctx)
		if err == nil && len(posts) > 0 {
			s.posts = posts
			s.dataSource = DataSourceRemote
			s.logger.Info("Adopted remote post collection", zap.Int("posts", len(posts)))
			return s
		}
		if err != nil {
			s.logger.Warn("Remote fetch failed, falling back to seed data", zap.Error(err))
		} else {
			s.logger.Info("Remote post collection empty, falling back to seed data")
		}
	}

	s.posts = SeedPosts()
	s.dataSource = DataSourceSeed
	return s
}

// DataSource reports whether the collection is remote or seed data.
func (s *Store) DataSource() DataSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataSource
}

// Posts returns a copy of the canonical collection in its current order.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Len returns the number of posts held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// Get returns the post with the given ID.
func (s *Store) Get(postID string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(postID)
	if i < 0 {
		return models.Post{}, &NotFoundError{Kind: "post", ID: postID}
	}
	return s.posts[i], nil
}

// RecordVote applies the viewer's vote optimistically: the transition
// function decides the new vote state and counter deltas, and counters
// are clamped at zero rather than going negative. The updated post is
// returned.
func (s *Store) RecordVote(postID string, direction models.VoteState) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(postID)
	if i < 0 {
		return models.Post{}, &NotFoundError{Kind: "post", ID: postID}
	}

	post := &s.posts[i]
	newState, upDelta, downDelta := ApplyVote(post.UserVote, direction)

	up, clampedUp := clampCounter(post.Upvotes + upDelta)
	down, clampedDown := clampCounter(post.Downvotes + downDelta)
	if clampedUp || clampedDown {
		s.logger.Warn("Vote counter clamped at zero",
			zap.String("post_id", postID),
			zap.Int64("upvotes", post.Upvotes+upDelta),
			zap.Int64("downvotes", post.Downvotes+downDelta))
	}

	post.Upvotes = up
	post.Downvotes = down
	post.UserVote = newState

	return *post, nil
}

// RecordTip accumulates a tip on the post. Invalid amounts are
// rejected with InvalidAmountError and leave the post untouched.
func (s *Store) RecordTip(postID string, amount float64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(postID)
	if i < 0 {
		return models.Post{}, &NotFoundError{Kind: "post", ID: postID}
	}

	post := &s.posts[i]
	if err := ApplyTip(post, amount); err != nil {
		return models.Post{}, err
	}

	return *post, nil
}

// InsertPost prepends a newly created post to the collection, keeping
// newest-first order.
func (s *Store) InsertPost(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
}

// index returns the position of the post with the given ID, or -1.
// Callers must hold s.mu.
func (s *Store) index(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}
	return -1
}
