package repository

import (
	"context"
	"time"

	"github.com/threadchain/threadchain/internal/cache"
	"github.com/threadchain/threadchain/internal/models"
)

// Cache TTLs per query type. Full feed listings change rarely between
// sessions; searches are short-lived.
const (
	listPostsTTL      = 30 * time.Second
	searchPostsTTL    = 60 * time.Second
	searchProfilesTTL = 60 * time.Second
)

// CachedStore decorates a RemoteStore with Redis result caching.
// A nil cache disables caching and passes every call through.
type CachedStore struct {
	store RemoteStore
	cache *cache.Cache
}

// NewCachedStore creates a caching decorator around a remote store
func NewCachedStore(store RemoteStore, redisCache *cache.Cache) *CachedStore {
	return &CachedStore{store: store, cache: redisCache}
}

// ListPosts fetches the canonical post collection, consulting the cache first.
func (s *CachedStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	key := cache.HashKey("list_posts")

	var cached []models.Post
	if err := s.cache.GetJSON(key, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	// Cache failures must not fail the request
	_ = s.cache.SetJSON(key, posts, listPostsTTL)

	return posts, nil
}

// SearchPosts runs a remote post search, consulting the cache first.
func (s *CachedStore) SearchPosts(ctx context.Context, q string) ([]models.Post, error) {
	key := cache.HashKey("search_posts", q)

	var cached []models.Post
	if err := s.cache.GetJSON(key, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.store.SearchPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(key, posts, searchPostsTTL)

	return posts, nil
}

// SearchProfiles runs a remote profile search, consulting the cache first.
func (s *CachedStore) SearchProfiles(ctx context.Context, q string) ([]models.User, error) {
	key := cache.HashKey("search_profiles", q)

	var cached []models.User
	if err := s.cache.GetJSON(key, &cached); err == nil {
		return cached, nil
	}

	users, err := s.store.SearchProfiles(ctx, q)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(key, users, searchProfilesTTL)

	return users, nil
}
