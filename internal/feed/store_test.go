package feed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/threadchain/threadchain/internal/models"
)

// stubRemote is a scriptable in-memory remote store.
type stubRemote struct {
	mu sync.Mutex

	posts   []models.Post
	listErr error

	searchResults []models.Post
	searchErr     error
	searchQueries []string

	profiles []models.User
}

func (s *stubRemote) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts, s.listErr
}

func (s *stubRemote) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	s.mu.Lock()
	s.searchQueries = append(s.searchQueries, query)
	s.mu.Unlock()
	return s.searchResults, s.searchErr
}

func (s *stubRemote) SearchProfiles(ctx context.Context, query string) ([]models.User, error) {
	return s.profiles, nil
}

func (s *stubRemote) queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.searchQueries))
	copy(out, s.searchQueries)
	return out
}

func TestNewStoreAdoptsRemoteData(t *testing.T) {
	remote := &stubRemote{posts: []models.Post{{ID: "r1"}, {ID: "r2"}}}

	store := NewStore(context.Background(), remote)

	if store.DataSource() != DataSourceRemote {
		t.Errorf("DataSource = %q, want %q", store.DataSource(), DataSourceRemote)
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestNewStoreFallsBackOnError(t *testing.T) {
	remote := &stubRemote{listErr: errors.New("connection refused")}

	store := NewStore(context.Background(), remote)

	if store.DataSource() != DataSourceSeed {
		t.Errorf("DataSource = %q, want %q", store.DataSource(), DataSourceSeed)
	}
	if store.Len() != len(SeedPosts()) {
		t.Errorf("Len = %d, want %d", store.Len(), len(SeedPosts()))
	}
}

func TestNewStoreFallsBackOnEmptyRemote(t *testing.T) {
	remote := &stubRemote{posts: nil}

	store := NewStore(context.Background(), remote)

	if store.DataSource() != DataSourceSeed {
		t.Errorf("DataSource = %q, want %q", store.DataSource(), DataSourceSeed)
	}
}

func TestNewStoreNilRemoteUsesSeed(t *testing.T) {
	store := NewStore(context.Background(), nil)

	if store.DataSource() != DataSourceSeed {
		t.Errorf("DataSource = %q, want %q", store.DataSource(), DataSourceSeed)
	}
}

func TestStoreGetUnknownPost(t *testing.T) {
	store := NewStore(context.Background(), nil)

	_, err := store.Get("no-such-post")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if notFound.Kind != "post" {
		t.Errorf("Kind = %q, want %q", notFound.Kind, "post")
	}
}

func TestStoreRecordVoteLifecycle(t *testing.T) {
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "p1", Upvotes: 10, Downvotes: 3},
	}})

	// Fresh upvote.
	post, err := store.RecordVote("p1", models.VoteUp)
	if err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if post.Upvotes != 11 || post.UserVote != models.VoteUp {
		t.Errorf("after upvote: upvotes=%d vote=%q", post.Upvotes, post.UserVote)
	}

	// Switch to downvote.
	post, err = store.RecordVote("p1", models.VoteDown)
	if err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if post.Upvotes != 10 || post.Downvotes != 4 || post.UserVote != models.VoteDown {
		t.Errorf("after switch: upvotes=%d downvotes=%d vote=%q", post.Upvotes, post.Downvotes, post.UserVote)
	}

	// Toggle off.
	post, err = store.RecordVote("p1", models.VoteDown)
	if err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if post.Upvotes != 10 || post.Downvotes != 3 || post.UserVote != models.VoteNone {
		t.Errorf("after toggle: upvotes=%d downvotes=%d vote=%q", post.Upvotes, post.Downvotes, post.UserVote)
	}
}

func TestStoreRecordVoteClampsAtZero(t *testing.T) {
	// A counter already at zero cannot go negative when a vote stored
	// as active is toggled off.
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "p1", Upvotes: 0, UserVote: models.VoteUp},
	}})

	post, err := store.RecordVote("p1", models.VoteUp)
	if err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if post.Upvotes != 0 {
		t.Errorf("Upvotes = %d, want 0", post.Upvotes)
	}
	if post.UserVote != models.VoteNone {
		t.Errorf("UserVote = %q, want cleared", post.UserVote)
	}
}

func TestStoreRecordVoteUnknownPostFailsClosed(t *testing.T) {
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "p1", Upvotes: 5},
	}})

	if _, err := store.RecordVote("missing", models.VoteUp); err == nil {
		t.Fatal("expected error for unknown post")
	}

	post, _ := store.Get("p1")
	if post.Upvotes != 5 || post.UserVote != models.VoteNone {
		t.Errorf("unrelated post mutated: %+v", post)
	}
}

func TestStoreRecordTip(t *testing.T) {
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "p1", TipAmount: 1.0},
	}})

	post, err := store.RecordTip("p1", 2.5)
	if err != nil {
		t.Fatalf("RecordTip: %v", err)
	}
	if post.TipAmount != 3.5 || !post.HasUserTipped {
		t.Errorf("after tip: amount=%v tipped=%v", post.TipAmount, post.HasUserTipped)
	}

	// Rejected tip leaves state untouched.
	if _, err := store.RecordTip("p1", -1); err == nil {
		t.Fatal("expected error for negative tip")
	}
	post, _ = store.Get("p1")
	if post.TipAmount != 3.5 {
		t.Errorf("TipAmount = %v after rejected tip, want 3.5", post.TipAmount)
	}
}

func TestStoreInsertPostPrepends(t *testing.T) {
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "old"},
	}})

	store.InsertPost(models.Post{ID: "new"})

	posts := store.Posts()
	if len(posts) != 2 || posts[0].ID != "new" || posts[1].ID != "old" {
		t.Errorf("order = %v", visibleIDs(posts))
	}
}

func TestStorePostsReturnsCopy(t *testing.T) {
	store := NewStore(context.Background(), &stubRemote{posts: []models.Post{
		{ID: "p1", Upvotes: 1},
	}})

	posts := store.Posts()
	posts[0].Upvotes = 999

	fresh, _ := store.Get("p1")
	if fresh.Upvotes != 1 {
		t.Errorf("canonical post mutated through returned slice")
	}
}
