package agentforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimezone = "America/Los_Angeles"
	DefaultLanguage = "en_US"

	defaultTimeout = 30 * time.Second
)

// Client is the Salesforce Einstein Agent API client.
type Client struct {
	apiHost     string
	agentID     string
	instanceURL string
	timezone    string
	language    string
	httpClient  *http.Client
}

// New creates a new Agent API client.
func New(apiHost, agentID, instanceURL string) (*Client, error) {
	if apiHost == "" {
		return nil, fmt.Errorf("agentforce: API host is required")
	}
	if agentID == "" {
		return nil, fmt.Errorf("agentforce: agent ID is required")
	}

	return &Client{
		apiHost:     apiHost,
		agentID:     agentID,
		instanceURL: instanceURL,
		timezone:    DefaultTimezone,
		language:    DefaultLanguage,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

// WithBaseURL overrides the API host, mainly for tests.
func (c *Client) WithBaseURL(apiHost string) *Client {
	c.apiHost = apiHost
	return c
}

// WithTimezone sets the session timezone passed at session creation.
func (c *Client) WithTimezone(tz string) *Client {
	c.timezone = tz
	return c
}

// WithHTTPClient overrides the HTTP client, e.g. to change the timeout.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// CreateSession opens a new agent session. Each call generates a fresh
// external session key so the platform sees a unique session request.
func (c *Client) CreateSession(ctx context.Context, token string) (string, error) {
	reqBody := CreateSessionRequest{
		ExternalSessionKey: "session-" + uuid.New().String(),
		InstanceConfig:     InstanceConfig{Endpoint: c.instanceURL},
		TZ:                 c.timezone,
		Variables: []SessionVariable{
			{Name: "$Context.EndUserLanguage", Type: "Text", Value: c.language},
		},
		FeatureSupport:        "Streaming",
		StreamingCapabilities: StreamingCapabilities{ChunkTypes: []string{"Text"}},
		BypassUser:            true,
	}

	url := fmt.Sprintf("%s/einstein/ai-agent/v1/agents/%s/sessions", c.apiHost, c.agentID)

	var parsed CreateSessionResponse
	if err := c.post(ctx, url, token, reqBody, &parsed); err != nil {
		return "", fmt.Errorf("agentforce: create session: %w", err)
	}

	if parsed.SessionID == "" {
		return "", ErrMissingSessionID
	}
	return parsed.SessionID, nil
}

// SendMessage delivers text into the session under the given sequence
// number and returns the first reply message.
func (c *Client) SendMessage(ctx context.Context, token, sessionID, text string, sequence int) (string, error) {
	reqBody := SendMessageRequest{
		Message: Message{
			SequenceID: sequence,
			Type:       "Text",
			Text:       text,
		},
		Variables: []SessionVariable{},
	}

	url := fmt.Sprintf("%s/einstein/ai-agent/v1/sessions/%s/messages", c.apiHost, sessionID)

	var parsed SendMessageResponse
	if err := c.post(ctx, url, token, reqBody, &parsed); err != nil {
		return "", fmt.Errorf("agentforce: send message: %w", err)
	}

	if len(parsed.Messages) == 0 {
		return "", ErrEmptyReply
	}
	return parsed.Messages[0].Message, nil
}

// post issues an authenticated JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, url, token string, body, out any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call Agent API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// The platform silently expires idle sessions; a vanished
		// session surfaces as 404 on the messages endpoint.
		return ErrSessionGone
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Agent API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
