package http

import (
	"github.com/gin-gonic/gin"

	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	ProcessIntent(c *gin.Context)
	ProcessCommand(c *gin.Context)
	LogEvent(c *gin.Context)
	CreateSession(c *gin.Context)
	GetMemory(c *gin.Context)
	GetAnalytics(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the voice domain.
func New(l log.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
