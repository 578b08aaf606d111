// Package transcription provides speech-to-text backends for audio jobs.
// The stub backend produces a canned transcript after a configurable delay;
// the Whisper backend calls the OpenAI transcription API.
package transcription

import (
	"context"
	"fmt"
	"net/http"
	"path"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber is satisfied by every backend in this package. Consumers
// that only need Transcribe should declare their own narrow interface;
// this one exists for provider selection at wiring time.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (Result, error)
}

// Result is the outcome of a transcription run.
type Result struct {
	Transcript string
	// DurationSeconds is the audio length when the backend reports it, 0
	// otherwise.
	DurationSeconds int
}

// Whisper transcribes audio files through the OpenAI API.
type Whisper struct {
	client   *openai.Client
	http     *http.Client
	language string
}

// NewWhisper constructs a Whisper-backed transcriber. language is an
// ISO-639-1 hint passed to the API, e.g. "pt".
func NewWhisper(apiKey, language string) *Whisper {
	return &Whisper{
		client:   openai.NewClient(apiKey),
		http:     http.DefaultClient,
		language: language,
	}
}

// Transcribe downloads the referenced audio and streams it to the API,
// returning the transcript text. The URL path's base name is passed along
// so the API can infer the audio format from its extension.
func (w *Whisper) Transcribe(ctx context.Context, audioURL string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build audio request: %w", err)
	}

	resp, err := w.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetch audio: unexpected status %d", resp.StatusCode)
	}

	tr, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   resp.Body,
		FilePath: path.Base(req.URL.Path),
		Language: w.language,
	})
	if err != nil {
		return Result{}, fmt.Errorf("whisper transcription: %w", err)
	}
	return Result{Transcript: tr.Text}, nil
}
