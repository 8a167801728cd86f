package transcribe

import "context"

// Provider is the interface for speech-to-text backends.
type Provider interface {
	Transcribe(ctx context.Context, audio []byte, filename string, opts Opts) (*Response, error)
	Name() string  // "elevenlabs", "whisper"
	Model() string // model identifier for logs
}

// Opts are per-request transcription options.
type Opts struct {
	Language string // ISO-639 language hint, e.g. "por"
}

// Response is the common transcription result from any provider.
type Response struct {
	Text     string
	Language string // language detected or confirmed by the provider
}
