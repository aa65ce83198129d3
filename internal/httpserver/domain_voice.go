package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"intelligent-voice-backend/internal/middleware"
	"intelligent-voice-backend/internal/pagecontext"
	voiceHTTP "intelligent-voice-backend/internal/voice/delivery/http"
	"intelligent-voice-backend/internal/voice/resolver"
	localResolver "intelligent-voice-backend/internal/voice/resolver/local"
	remoteResolver "intelligent-voice-backend/internal/voice/resolver/remote"
	voiceUC "intelligent-voice-backend/internal/voice/usecase"
)

// setupVoiceDomain initializes the voice domain and registers its
// routes under /api/voice.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Resolvers
	analyzer := pagecontext.New(nil)
	local := localResolver.New(srv.l)

	var remote resolver.Resolver
	if srv.llmManager != nil {
		remote = remoteResolver.New(srv.llmManager, srv.l)
		srv.l.Infof(ctx, "Remote resolver enabled")
	} else {
		srv.l.Infof(ctx, "No LLM providers configured, resolving locally only")
	}

	// 2. UseCase over the SQLite store
	uc := voiceUC.New(srv.l, analyzer, remote, local, srv.store, srv.store, srv.store, srv.store)

	// 3. HTTP Handler
	h := voiceHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/voice/*
	voiceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
