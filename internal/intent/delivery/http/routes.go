package http

import (
	"github.com/gin-gonic/gin"

	"intent-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/classify", h.Classify)
	rg.POST("/understand", h.Understand)
	rg.POST("/extract", h.Extract)
	rg.GET("/describe", h.Describe)
	rg.GET("/taxonomy", h.Taxonomy)
	rg.GET("/search", h.Search)

	learning := rg.Group("/learning")
	{
		learning.POST("/feedback", h.Feedback)
		learning.POST("/examples", h.Examples)
		learning.GET("/history", h.History)
		learning.POST("/mine", h.Mine)
	}
}
