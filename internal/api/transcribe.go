package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/speakwell/speakwell-api/internal/evaluate"
	"github.com/speakwell/speakwell-api/internal/metrics"
	"github.com/speakwell/speakwell-api/internal/transcribe"
)

// Transcriber is the subset of the STT provider the transcribe handler needs.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string, opts transcribe.Opts) (*transcribe.Response, error)
	Name() string
}

// TranscribeHandler handles pronunciation evaluation uploads.
type TranscribeHandler struct {
	stt      Transcriber
	language string
	log      zerolog.Logger
}

// NewTranscribeHandler creates a new transcribe handler. language is the
// ISO-639 hint passed to the provider on every request.
func NewTranscribeHandler(stt Transcriber, language string, log zerolog.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		stt:      stt,
		language: language,
		log:      log.With().Str("handler", "transcribe").Logger(),
	}
}

// Routes registers the transcribe endpoint.
func (h *TranscribeHandler) Routes(r chi.Router) {
	r.Post("/transcribe", h.Transcribe)
}

// Transcribe handles POST /transcribe.
// Accepts a multipart form with an "audio" file and an "expected_phrase"
// field, sends the audio to the STT provider, and returns the word-by-word
// evaluation of the transcript against the expected phrase.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, ErrInvalidBody, "invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	expected := r.FormValue("expected_phrase")
	if expected == "" {
		WriteErrorWithCode(w, http.StatusBadRequest, ErrMissingField, "expected_phrase is required")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, ErrMissingField, "audio file is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Msg("audio read failed")
		WriteErrorWithCode(w, http.StatusBadGateway, ErrTranscriptionFailed, "transcription failed")
		return
	}

	start := time.Now()
	resp, err := h.stt.Transcribe(r.Context(), audio, header.Filename, transcribe.Opts{Language: h.language})
	metrics.TranscriptionDuration.WithLabelValues(h.stt.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues(h.stt.Name(), "error").Inc()
		// Provider detail stays in the logs; the caller gets one generic error.
		h.log.Error().Err(err).Str("provider", h.stt.Name()).Msg("provider transcription failed")
		WriteErrorWithCode(w, http.StatusBadGateway, ErrTranscriptionFailed, "transcription failed")
		return
	}
	metrics.TranscriptionsTotal.WithLabelValues(h.stt.Name(), "ok").Inc()

	result := evaluate.Evaluate(resp.Text, expected)
	metrics.PronunciationScore.Observe(result.OverallScore)

	h.log.Debug().
		Str("expected", expected).
		Str("transcribed", resp.Text).
		Float64("score", result.OverallScore).
		Bool("all_correct", result.AllCorrect).
		Msg("evaluation complete")

	WriteJSON(w, http.StatusOK, result)
}
