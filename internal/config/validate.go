package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints that tag-level validation cannot
// express. It collects all problems instead of stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Errorf("database: max_conns (%d) < min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}

	if len(c.Auth.BearerSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth: bearer_secret must be at least 32 characters, got %d",
			len(c.Auth.BearerSecret)))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log: unknown format %q", c.Log.Format))
	}

	if c.Dashboard.CompletedVisitsTarget <= 0 {
		errs = append(errs, fmt.Errorf("dashboard: completed_visits_target must be positive, got %d",
			c.Dashboard.CompletedVisitsTarget))
	}

	if c.Briefing.LookaheadDays <= 0 {
		errs = append(errs, fmt.Errorf("briefing: lookahead_days must be positive, got %d",
			c.Briefing.LookaheadDays))
	}
	if c.Briefing.NotesPreviewChars <= 0 {
		errs = append(errs, fmt.Errorf("briefing: notes_preview_chars must be positive, got %d",
			c.Briefing.NotesPreviewChars))
	}

	if c.Syncer.Interval <= 0 {
		errs = append(errs, fmt.Errorf("syncer: interval must be positive, got %s", c.Syncer.Interval))
	}

	switch c.Transcription.Provider {
	case "stub":
	case "whisper":
		if c.Transcription.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("transcription: whisper provider requires openai_api_key"))
		}
	default:
		errs = append(errs, fmt.Errorf("transcription: unknown provider %q", c.Transcription.Provider))
	}

	return errors.Join(errs...)
}
