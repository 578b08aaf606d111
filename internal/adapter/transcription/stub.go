package transcription

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

const stubTranscript = "During the visit the doctor discussed the phase III study results, " +
	"showing particular interest in the efficacy data and the safety profile. " +
	"Questions were raised about the access protocol; next steps include sending " +
	"supplementary materials and scheduling a follow-up meeting."

// Stub simulates transcription for environments without a speech-to-text
// provider. It waits for the configured delay and returns a fixed
// transcript.
type Stub struct {
	clock clockwork.Clock
	delay time.Duration
}

// NewStub constructs a stub transcriber with the given processing delay.
func NewStub(clock clockwork.Clock, delay time.Duration) *Stub {
	return &Stub{clock: clock, delay: delay}
}

// Transcribe returns the canned transcript after the delay, or the context
// error if cancelled first.
func (s *Stub) Transcribe(ctx context.Context, audioURL string) (Result, error) {
	timer := s.clock.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.Chan():
	}
	return Result{Transcript: stubTranscript, DurationSeconds: 120}, nil
}
