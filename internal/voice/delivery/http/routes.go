package http

import (
	"github.com/gin-gonic/gin"

	"intelligent-voice-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// turn endpoints sit behind the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	voice := rg.Group("/voice")
	{
		voice.POST("/intent", mw.RateLimit(), h.ProcessIntent)
		voice.POST("/command", mw.RateLimit(), h.ProcessCommand)
		voice.POST("/log", h.LogEvent)
		voice.POST("/sessions", h.CreateSession)
		voice.GET("/memory/:user_id", h.GetMemory)
		voice.GET("/analytics/:user_id", h.GetAnalytics)
	}
}
