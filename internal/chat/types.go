package chat

// ConverseInput is one inbound user message.
type ConverseInput struct {
	UserID string
	Text   string
}

// ConverseOutput is the agent's reply attributed to the user's session.
type ConverseOutput struct {
	UserID    string
	SessionID string
	Reply     string
}
