package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/feed"
	"github.com/threadchain/threadchain/pkg/logging"
)

// Router sets up API routes
type Router struct {
	handler *JSONRPCHandler
	engine  *feed.Engine
	logger  *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(engine *feed.Engine) *Router {
	handler := NewJSONRPCHandler()
	router := &Router{
		handler: handler,
		engine:  engine,
		logger:  logging.GetLogger().With(zap.String("component", "api-router")),
	}

	// Register all API methods
	router.registerMethods()

	return router
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// JSON-RPC endpoint
	engine.POST("/", r.handler.Handle)
}

// registerMethods registers all API methods
func (r *Router) registerMethods() {
	feedAPI := NewFeedAPI(r.engine)

	r.handler.RegisterMethod("feed.get_visible_posts", feedAPI.GetVisiblePosts)
	r.handler.RegisterMethod("feed.set_search_query", feedAPI.SetSearchQuery)
	r.handler.RegisterMethod("feed.set_selected_hashtag", feedAPI.SetSelectedHashtag)
	r.handler.RegisterMethod("feed.set_active_tab", feedAPI.SetActiveTab)
	r.handler.RegisterMethod("feed.vote", feedAPI.Vote)
	r.handler.RegisterMethod("feed.tip", feedAPI.Tip)
	r.handler.RegisterMethod("feed.create_post", feedAPI.CreatePost)
	r.handler.RegisterMethod("feed.trending_hashtags", feedAPI.TrendingHashtags)
	r.handler.RegisterMethod("feed.search_profiles", feedAPI.SearchProfiles)
	r.handler.RegisterMethod("feed.get_search_results", feedAPI.GetSearchResults)
	r.handler.RegisterMethod("feed.get_notifications", feedAPI.GetNotifications)
	r.handler.RegisterMethod("feed.mark_notification_read", feedAPI.MarkNotificationRead)
	r.handler.RegisterMethod("feed.get_state", feedAPI.GetState)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "threadchain-api",
	})
}
