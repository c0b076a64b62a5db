package main

import (
	"context"
	"fmt"
	"net/http"

	"agent-relay/config"
	_ "agent-relay/docs" // Swagger docs
	"agent-relay/internal/chat/registry"
	chatUC "agent-relay/internal/chat/usecase"
	"agent-relay/internal/httpserver"
	"agent-relay/internal/speech"
	speechUC "agent-relay/internal/speech/usecase"
	"agent-relay/pkg/agentforce"
	"agent-relay/pkg/elevenlabs"
	"agent-relay/pkg/log"
	"agent-relay/pkg/sfauth"
)

// @title       Agent Relay API
// @description Relays user messages into per-user Salesforce agent sessions behind a single stateless-looking endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Agent Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agent API host: %s", cfg.Salesforce.APIHost)

	// 3. Salesforce clients
	creds := sfauth.New(cfg.Salesforce.TokenURL, cfg.Salesforce.ClientID, cfg.Salesforce.ClientSecret)

	agentClient, err := agentforce.New(cfg.Salesforce.APIHost, cfg.Salesforce.AgentID, cfg.Salesforce.InstanceURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Agent API client: ", err)
		return
	}
	agentClient.WithTimezone(cfg.Salesforce.Timezone)
	if cfg.Salesforce.Timeout > 0 {
		agentClient.WithHTTPClient(&http.Client{Timeout: cfg.Salesforce.Timeout})
	}

	// 4. Chat domain
	sessions := registry.New(logger)
	chatUseCase := chatUC.New(logger, creds, agentClient, sessions)

	// 5. Speech domain (optional)
	var speechUseCase speech.UseCase
	if cfg.ElevenLabs.APIKey != "" && cfg.ElevenLabs.VoiceID != "" {
		ttsClient, ttsErr := elevenlabs.New(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.VoiceID)
		if ttsErr != nil {
			logger.Warnf(ctx, "ElevenLabs not available (optional): %v", ttsErr)
		} else {
			speechUseCase = speechUC.New(logger, ttsClient)
			logger.Info(ctx, "Speech synthesis initialized")
		}
	} else {
		logger.Warn(ctx, "Speech synthesis skipped: ELEVEN_API_KEY or ELEVEN_VOICE_ID is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatUseCase:     chatUseCase,
		SpeechUseCase:   speechUseCase,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
