package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/threadchain/threadchain/internal/feed"
	"github.com/threadchain/threadchain/internal/models"
)

// FeedAPI exposes the feed engine contract to the presentation layer.
type FeedAPI struct {
	engine *feed.Engine
}

// NewFeedAPI creates a new feed API
func NewFeedAPI(engine *feed.Engine) *FeedAPI {
	return &FeedAPI{engine: engine}
}

// GetVisiblePosts handles feed.get_visible_posts
func (f *FeedAPI) GetVisiblePosts(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	return f.engine.VisiblePosts(), nil
}

// SetSearchQuery handles feed.set_search_query
func (f *FeedAPI) SetSearchQuery(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	query, _ := pMap["query"].(string)
	// The debounced remote search outlives this request, so it cannot
	// run on the request context.
	f.engine.SetSearchQuery(context.Background(), query)

	return f.engine.VisiblePosts(), nil
}

// SetSelectedHashtag handles feed.set_selected_hashtag
func (f *FeedAPI) SetSelectedHashtag(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	hashtag, _ := pMap["hashtag"].(string)
	f.engine.SetSelectedHashtag(hashtag)

	return f.engine.VisiblePosts(), nil
}

// SetActiveTab handles feed.set_active_tab
func (f *FeedAPI) SetActiveTab(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	tab, _ := pMap["tab"].(string)
	if err := f.engine.SetActiveTab(feed.Tab(tab)); err != nil {
		return nil, err
	}

	return f.engine.VisiblePosts(), nil
}

// Vote handles feed.vote
func (f *FeedAPI) Vote(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	postID, _ := pMap["post_id"].(string)
	if postID == "" {
		return nil, fmt.Errorf("missing required parameter: post_id")
	}
	direction, _ := pMap["direction"].(string)

	return f.engine.Vote(postID, models.VoteState(direction))
}

// Tip handles feed.tip
func (f *FeedAPI) Tip(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	postID, _ := pMap["post_id"].(string)
	if postID == "" {
		return nil, fmt.Errorf("missing required parameter: post_id")
	}
	amount, _ := pMap["amount"].(float64)

	return f.engine.Tip(postID, amount)
}

// CreatePost handles feed.create_post
func (f *FeedAPI) CreatePost(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	draft := feed.PostDraft{}
	draft.Content, _ = pMap["content"].(string)
	draft.MediaURL, _ = pMap["media_url"].(string)
	if mt, ok := pMap["media_type"].(string); ok {
		draft.MediaType = models.MediaType(mt)
	}
	if rawTags, ok := pMap["tags"].([]interface{}); ok {
		for _, raw := range rawTags {
			if tag, ok := raw.(string); ok {
				draft.Tags = append(draft.Tags, tag)
			}
		}
	}

	return f.engine.CreatePost(draft)
}

// TrendingHashtags handles feed.trending_hashtags
func (f *FeedAPI) TrendingHashtags(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	limit := 0
	if len(params) > 0 {
		pMap, err := paramMap(params)
		if err != nil {
			return nil, err
		}
		if l, ok := pMap["limit"].(float64); ok {
			limit = int(l)
		}
	}

	return f.engine.TrendingHashtags(limit), nil
}

// SearchProfiles handles feed.search_profiles
func (f *FeedAPI) SearchProfiles(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	query, _ := pMap["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("missing required parameter: query")
	}

	return f.engine.SearchProfiles(ctx.Request.Context(), query)
}

// GetSearchResults handles feed.get_search_results
func (f *FeedAPI) GetSearchResults(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	query, posts := f.engine.RemoteSearchResults()
	return gin.H{
		"query": query,
		"posts": posts,
	}, nil
}

// GetNotifications handles feed.get_notifications
func (f *FeedAPI) GetNotifications(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	return f.engine.Notifications(), nil
}

// MarkNotificationRead handles feed.mark_notification_read
func (f *FeedAPI) MarkNotificationRead(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	pMap, err := paramMap(params)
	if err != nil {
		return nil, err
	}

	id, _ := pMap["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("missing required parameter: id")
	}

	if err := f.engine.MarkNotificationRead(id); err != nil {
		return nil, err
	}

	return gin.H{"marked": id}, nil
}

// GetState handles feed.get_state
func (f *FeedAPI) GetState(ctx *gin.Context, params json.RawMessage) (interface{}, error) {
	return gin.H{
		"dataSource":      f.engine.Store().DataSource(),
		"searchQuery":     f.engine.SearchQuery(),
		"selectedHashtag": f.engine.SelectedHashtag(),
		"activeTab":       f.engine.ActiveTab(),
		"postCount":       f.engine.Store().Len(),
	}, nil
}

// paramMap decodes params into a generic map
func paramMap(params json.RawMessage) (map[string]interface{}, error) {
	pMap := map[string]interface{}{}
	if len(params) == 0 {
		return pMap, nil
	}
	if err := json.Unmarshal(params, &pMap); err != nil {
		return nil, fmt.Errorf("invalid parameters format")
	}
	return pMap, nil
}
