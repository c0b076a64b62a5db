package http

import (
	"agent-relay/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text"    binding:"required"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ConverseInput {
	return chat.ConverseInput{
		UserID: r.UserID,
		Text:   r.Text,
	}
}

// --- Response DTOs ---

type chatResp struct {
	UserID     string `json:"user_id"`
	SessionID  string `json:"session_id"`
	AgentReply string `json:"agent_reply"`
}

func (h *handler) newChatResp(out chat.ConverseOutput) chatResp {
	return chatResp{
		UserID:     out.UserID,
		SessionID:  out.SessionID,
		AgentReply: out.Reply,
	}
}
