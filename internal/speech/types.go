package speech

// SynthesizeInput is the text to render.
type SynthesizeInput struct {
	Text string
}

// SynthesizeOutput carries the rendered audio.
type SynthesizeOutput struct {
	Audio       []byte
	ContentType string
}
