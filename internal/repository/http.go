package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/models"
	"github.com/threadchain/threadchain/pkg/config"
	"github.com/threadchain/threadchain/pkg/logging"
	"github.com/threadchain/threadchain/pkg/telemetry"
)

const profileSelect = "id,wallet_address,username,display_name,bio,avatar,follower_count,following_count,is_verified,created_at"

// Client is an HTTP RemoteStore talking to a PostgREST-style endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	searchLimit int
	logger      *zap.Logger
}

// NewClient creates a new HTTP remote store client
func NewClient(cfg *config.RemoteConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("remote_url is required")
	}

	logger := logging.GetLogger().With(zap.String("component", "remote-client"))

	client := &Client{
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		apiKey:      cfg.APIKey,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		searchLimit: cfg.SearchLimit,
		logger:      logger,
	}

	logger.Info("Remote store client initialized", zap.String("url", cfg.URL))

	return client, nil
}

// ListPosts fetches the canonical post collection, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "remote.list_posts")
	defer span.End()

	query := url.Values{}
	query.Set("select", fmt.Sprintf("*,profiles(%s)", profileSelect))
	query.Set("order", "created_at.desc")

	var rows []postRow
	if err := c.get(ctx, "/rest/v1/posts", query, &rows); err != nil {
		return nil, wrapErr("list_posts", err)
	}

	posts := toModels(rows)
	if err := c.loadTags(ctx, posts); err != nil {
		return nil, wrapErr("list_posts", err)
	}
	return posts, nil
}

// SearchPosts runs a substring text search against post content,
// newest first, bounded by the configured search limit.
func (c *Client) SearchPosts(ctx context.Context, q string) ([]models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "remote.search_posts")
	defer span.End()

	query := url.Values{}
	query.Set("select", fmt.Sprintf("*,profiles(%s)", profileSelect))
	query.Set("content", "ilike."+likePattern(q))
	query.Set("order", "created_at.desc")
	query.Set("limit", fmt.Sprintf("%d", c.searchLimit))

	var rows []postRow
	if err := c.get(ctx, "/rest/v1/posts", query, &rows); err != nil {
		return nil, wrapErr("search_posts", err)
	}

	posts := toModels(rows)
	if err := c.loadTags(ctx, posts); err != nil {
		return nil, wrapErr("search_posts", err)
	}
	return posts, nil
}

// SearchProfiles searches profiles by username or display name.
func (c *Client) SearchProfiles(ctx context.Context, q string) ([]models.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "remote.search_profiles")
	defer span.End()

	query := url.Values{}
	query.Set("select", profileSelect)
	query.Set("or", fmt.Sprintf("(username.ilike.%s,display_name.ilike.%s)", likePattern(q), likePattern(q)))
	query.Set("limit", "10")

	var rows []profileRow
	if err := c.get(ctx, "/rest/v1/profiles", query, &rows); err != nil {
		return nil, wrapErr("search_profiles", err)
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toModel())
	}
	return users, nil
}

// loadTags fetches tag rows for the given posts in one batch query.
// Posts without tag rows keep an empty tag set.
func (c *Client) loadTags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}

	query := url.Values{}
	query.Set("select", "post_id,tag")
	query.Set("post_id", fmt.Sprintf("in.(%s)", strings.Join(ids, ",")))

	var rows []postTagRow
	if err := c.get(ctx, "/rest/v1/post_tags", query, &rows); err != nil {
		return err
	}

	attachTags(posts, rows)
	return nil
}

// get performs a GET request and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Remote store returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// likePattern builds a PostgREST ilike pattern for substring matching
func likePattern(q string) string {
	return "*" + q + "*"
}
