package usecase

import (
	"agent-relay/pkg/elevenlabs"
	pkgLog "agent-relay/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	tts elevenlabs.ITTS
}

// New creates a new speech UseCase instance.
func New(l pkgLog.Logger, tts elevenlabs.ITTS) *implUseCase {
	return &implUseCase{
		l:   l,
		tts: tts,
	}
}
