package elevenlabs

// SynthesizeRequest is the body for the text-to-speech endpoint.
type SynthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}
