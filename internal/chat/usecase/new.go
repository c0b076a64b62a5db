package usecase

import (
	"agent-relay/internal/chat/registry"
	"agent-relay/pkg/agentforce"
	pkgLog "agent-relay/pkg/log"
	"agent-relay/pkg/sfauth"
)

type implUseCase struct {
	l        pkgLog.Logger
	creds    sfauth.IProvider
	agent    agentforce.IAgentAPI
	sessions *registry.Registry
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	creds sfauth.IProvider,
	agent agentforce.IAgentAPI,
	sessions *registry.Registry,
) *implUseCase {
	return &implUseCase{
		l:        l,
		creds:    creds,
		agent:    agent,
		sessions: sessions,
	}
}
