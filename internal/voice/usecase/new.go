package usecase

import (
	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/repository"
	"intelligent-voice-backend/internal/voice/resolver"
	pkgLog "intelligent-voice-backend/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	analyzer      *pagecontext.Analyzer
	remote        resolver.Resolver
	local         resolver.Resolver
	memoryRepo    repository.MemoryRepository
	analyticsRepo repository.AnalyticsRepository
	sessionRepo   repository.SessionRepository
	interactRepo  repository.InteractionRepository
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates a new voice UseCase instance. The remote resolver may be
// nil, in which case every turn resolves locally.
func New(
	l pkgLog.Logger,
	analyzer *pagecontext.Analyzer,
	remote resolver.Resolver,
	local resolver.Resolver,
	memoryRepo repository.MemoryRepository,
	analyticsRepo repository.AnalyticsRepository,
	sessionRepo repository.SessionRepository,
	interactRepo repository.InteractionRepository,
) *implUseCase {
	return &implUseCase{
		l:             l,
		analyzer:      analyzer,
		remote:        remote,
		local:         local,
		memoryRepo:    memoryRepo,
		analyticsRepo: analyticsRepo,
		sessionRepo:   sessionRepo,
		interactRepo:  interactRepo,
	}
}
