package agentforce

// CreateSessionRequest is the body for the session-creation endpoint.
type CreateSessionRequest struct {
	ExternalSessionKey    string                `json:"externalSessionKey"`
	InstanceConfig        InstanceConfig        `json:"instanceConfig"`
	TZ                    string                `json:"tz"`
	Variables             []SessionVariable     `json:"variables"`
	FeatureSupport        string                `json:"featureSupport"`
	StreamingCapabilities StreamingCapabilities `json:"streamingCapabilities"`
	BypassUser            bool                  `json:"bypassUser"`
}

// InstanceConfig points the agent at a Salesforce org instance.
type InstanceConfig struct {
	Endpoint string `json:"endpoint"`
}

// SessionVariable is a typed context variable passed at session start.
type SessionVariable struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StreamingCapabilities declares which chunk types the client accepts.
type StreamingCapabilities struct {
	ChunkTypes []string `json:"chunkTypes"`
}

// CreateSessionResponse is the session-creation response. Only the
// session identifier is consumed.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// SendMessageRequest is the body for the message-send endpoint.
type SendMessageRequest struct {
	Message   Message           `json:"message"`
	Variables []SessionVariable `json:"variables"`
}

// Message carries one user utterance with its sequence number.
// SequenceID is supplied by the caller; this client does no sequencing.
type Message struct {
	SequenceID int    `json:"sequenceId"`
	Type       string `json:"type"`
	Text       string `json:"text"`
}

// SendMessageResponse is the message-send response. The agent may return
// several message objects; only the first is consumed.
type SendMessageResponse struct {
	Messages []AgentMessage `json:"messages"`
}

// AgentMessage is a single reply object from the agent.
type AgentMessage struct {
	Message string `json:"message"`
}
