package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/models"
	"github.com/threadchain/threadchain/internal/repository"
	"github.com/threadchain/threadchain/pkg/logging"
)

// Wallet supplies the opaque viewer-identity signal gating mutations.
// Unauthenticated viewers may read but not vote, tip or post.
type Wallet interface {
	Connected() bool
	Address() string
}

// PostDraft is the input for creating a post.
type PostDraft struct {
	Content   string
	MediaURL  string
	MediaType models.MediaType
	Tags      []string
}

// Engine is the application-state object exposed to the presentation
// layer: the local post store, the selector state and the mutators.
// Presentation components are purely reactive consumers; they own no
// business invariants. There is no ambient singleton; the engine is
// passed in explicitly.
type Engine struct {
	mu     sync.Mutex
	store  *Store
	remote repository.RemoteStore

	wallet   Wallet
	notifier Notifier
	viewer   models.User
	inbox    *Inbox

	searchQuery     string
	selectedHashtag string
	activeTab       Tab

	searcher           *searcher
	remoteResults      []models.Post
	remoteResultsQuery string

	localSeq      int64
	trendingLimit int
	logger        *zap.Logger
}

// Options configures an Engine.
type Options struct {
	Remote         repository.RemoteStore
	Wallet         Wallet
	Notifier       Notifier
	SearchDebounce time.Duration
	TrendingLimit  int
}

// NewEngine constructs the engine, populating the local post store
// from the remote store (or seed data, see NewStore).
func NewEngine(ctx context.Context, opts Options) *Engine {
	logger := logging.GetLogger().With(zap.String("component", "feed-engine"))

	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	trendingLimit := opts.TrendingLimit
	if trendingLimit <= 0 {
		trendingLimit = DefaultTrendingLimit
	}

	e := &Engine{
		store:         NewStore(ctx, opts.Remote),
		remote:        opts.Remote,
		wallet:        opts.Wallet,
		notifier:      notifier,
		inbox:         NewInbox(),
		activeTab:     TabTrending,
		trendingLimit: trendingLimit,
		logger:        logger,
	}
	e.searcher = newSearcher(opts.Remote, opts.SearchDebounce, e.applySearchResults, logger)
	return e
}

// Store exposes the underlying local post store.
func (e *Engine) Store() *Store {
	return e.store
}

// Inbox exposes the viewer's notification inbox.
func (e *Engine) Inbox() *Inbox {
	return e.inbox
}

// SetViewer sets the current user the engine acts on behalf of.
func (e *Engine) SetViewer(user models.User) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewer = user
}

// Viewer returns the current user.
func (e *Engine) Viewer() models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewer
}

// VisiblePosts recomputes the visible post list from the canonical
// collection and the current selector state. The returned slice is a
// derived view; the canonical collection is never mutated.
func (e *Engine) VisiblePosts() []models.Post {
	e.mu.Lock()
	query, hashtag, tab := e.searchQuery, e.selectedHashtag, e.activeTab
	e.mu.Unlock()

	return ComputeVisible(e.store.Posts(), query, hashtag, tab)
}

// SearchQuery returns the active free-text search query.
func (e *Engine) SearchQuery() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.searchQuery
}

// SelectedHashtag returns the selected hashtag, or empty.
func (e *Engine) SelectedHashtag() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedHashtag
}

// ActiveTab returns the active feed tab.
func (e *Engine) ActiveTab() Tab {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeTab
}

// SetSearchQuery activates free-text narrowing. Search and hashtag
// narrowing are mutually exclusive, so a non-empty query clears any
// selected hashtag; the exclusivity lives in this state transition,
// not in render logic. A non-empty query also schedules a debounced
// remote search.
func (e *Engine) SetSearchQuery(ctx context.Context, query string) {
	e.mu.Lock()
	e.searchQuery = query
	if query != "" {
		e.selectedHashtag = ""
	}
	e.mu.Unlock()

	if query != "" {
		e.searcher.Search(ctx, query)
	}
}

// SetSelectedHashtag activates hashtag narrowing and clears any active
// search query.
func (e *Engine) SetSelectedHashtag(hashtag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedHashtag = hashtag
	if hashtag != "" {
		e.searchQuery = ""
	}
}

// SetActiveTab switches the feed ordering mode.
func (e *Engine) SetActiveTab(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("invalid feed tab: %q", tab)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activeTab = tab
	return nil
}

// Vote applies the viewer's vote on a post. Requires a connected wallet.
func (e *Engine) Vote(postID string, direction models.VoteState) (models.Post, error) {
	if err := e.requireWallet(); err != nil {
		return models.Post{}, err
	}
	if !direction.Valid() {
		return models.Post{}, fmt.Errorf("invalid vote direction: %q", direction)
	}
	return e.store.RecordVote(postID, direction)
}

// Tip records a tip on a post and signals the outcome through the
// notifier side-channel. Requires a connected wallet.
func (e *Engine) Tip(postID string, amount float64) (models.Post, error) {
	if err := e.requireWallet(); err != nil {
		return models.Post{}, err
	}

	post, err := e.store.RecordTip(postID, amount)
	if err != nil {
		return models.Post{}, err
	}

	e.notify(models.Notification{
		ID:        e.nextLocalID("notif"),
		Type:      models.NotifyTypeTip,
		FromUser:  e.Viewer(),
		Amount:    amount,
		PostID:    postID,
		Message:   fmt.Sprintf("Tipped %.2f SOL to @%s", amount, post.Author.Username),
		CreatedAt: time.Now().UTC(),
	})

	return post, nil
}

// CreatePost validates the draft, inserts the new post into the local
// store and signals creation through the notifier. Requires a
// connected wallet.
func (e *Engine) CreatePost(draft PostDraft) (models.Post, error) {
	if err := e.requireWallet(); err != nil {
		return models.Post{}, err
	}

	content := strings.TrimSpace(draft.Content)
	if content == "" {
		return models.Post{}, fmt.Errorf("post content is required")
	}
	if len([]rune(content)) > models.MaxContentLength {
		return models.Post{}, fmt.Errorf("post content exceeds %d characters", models.MaxContentLength)
	}
	if draft.MediaType != models.MediaTypeNone &&
		draft.MediaType != models.MediaTypeImage &&
		draft.MediaType != models.MediaTypeVideo {
		return models.Post{}, fmt.Errorf("invalid media type: %q", draft.MediaType)
	}

	tags := append(append([]string{}, draft.Tags...), ExtractHashtags(content)...)

	post := models.Post{
		ID:        e.nextLocalID("post"),
		Author:    e.Viewer(),
		Content:   content,
		MediaURL:  draft.MediaURL,
		MediaType: draft.MediaType,
		Tags:      NormalizeTags(tags),
		CreatedAt: time.Now().UTC(),
	}

	e.store.InsertPost(post)

	e.notify(models.Notification{
		ID:        e.nextLocalID("notif"),
		Type:      models.NotifyTypeComment,
		FromUser:  post.Author,
		PostID:    post.ID,
		Message:   "Post published",
		CreatedAt: post.CreatedAt,
	})

	e.logger.Debug("Created post",
		zap.String("post_id", post.ID),
		zap.Strings("tags", post.Tags))

	return post, nil
}

// TrendingHashtags ranks hashtags across the canonical collection.
// A non-positive limit falls back to the configured default.
func (e *Engine) TrendingHashtags(limit int) []string {
	if limit <= 0 {
		limit = e.trendingLimit
	}
	return TrendingHashtags(e.store.Posts(), limit)
}

// SearchProfiles searches remote profiles by username or display name.
func (e *Engine) SearchProfiles(ctx context.Context, query string) ([]models.User, error) {
	if e.remote == nil {
		return []models.User{}, nil
	}
	return e.remote.SearchProfiles(ctx, query)
}

// RemoteSearchResults returns the latest remote search results and the
// query that produced them.
func (e *Engine) RemoteSearchResults() (string, []models.Post) {
	e.mu.Lock()
	defer e.mu.Unlock()
	posts := make([]models.Post, len(e.remoteResults))
	copy(posts, e.remoteResults)
	return e.remoteResultsQuery, posts
}

// applySearchResults stores the results of a completed remote search.
// Stale responses never reach here; the searcher drops them.
func (e *Engine) applySearchResults(query string, posts []models.Post) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.remoteResultsQuery = query
	e.remoteResults = posts
}

// Notifications returns the viewer's notification list.
func (e *Engine) Notifications() []models.Notification {
	return e.inbox.All()
}

// MarkNotificationRead marks a notification as read (idempotent).
func (e *Engine) MarkNotificationRead(id string) error {
	return e.inbox.MarkRead(id)
}

// notify records a notification in the inbox and forwards it to the
// UI-observable sink.
func (e *Engine) notify(n models.Notification) {
	e.inbox.Add(n)
	e.notifier.Notify(n)
}

// requireWallet enforces the call-site permission check on mutations.
func (e *Engine) requireWallet() error {
	if e.wallet == nil || !e.wallet.Connected() {
		return ErrWalletRequired
	}
	return nil
}

// nextLocalID issues session-local IDs for optimistically created records.
func (e *Engine) nextLocalID(kind string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.localSeq++
	return fmt.Sprintf("local-%s-%d", kind, e.localSeq)
}

// ExtractHashtags returns the #tag tokens embedded in post content,
// in order of appearance, hash stripped.
func ExtractHashtags(content string) []string {
	var tags []string
	for _, field := range strings.Fields(content) {
		if !strings.HasPrefix(field, "#") {
			continue
		}
		tag := strings.TrimFunc(field[1:], func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
		})
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NormalizeTags lowercases, trims and de-duplicates draft tags,
// preserving first-seen order and dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tag, "#")))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
