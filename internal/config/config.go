package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Log           LogConfig           `yaml:"log"`
	Dashboard     DashboardConfig     `yaml:"dashboard"`
	Briefing      BriefingConfig      `yaml:"briefing"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Syncer        SyncerConfig        `yaml:"syncer"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds request-authentication settings: the HMAC secret used to
// verify bearer tokens, and nothing else. Client API keys live in the store.
type AuthConfig struct {
	BearerSecret string `yaml:"bearer_secret" env:"AUTH_BEARER_SECRET" env-required:"true"`
	BearerIssuer string `yaml:"bearer_issuer" env:"AUTH_BEARER_ISSUER" env-default:"msl-backend"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DashboardConfig holds dashboard aggregation settings.
type DashboardConfig struct {
	// CompletedVisitsTarget is the fixed monthly goal returned alongside
	// actuals for progress-bar rendering.
	CompletedVisitsTarget int `yaml:"completed_visits_target" env:"DASHBOARD_COMPLETED_VISITS_TARGET" env-default:"30"`
}

// BriefingConfig holds briefing-generation settings.
type BriefingConfig struct {
	LookaheadDays     int `yaml:"lookahead_days"      env:"BRIEFING_LOOKAHEAD_DAYS"      env-default:"7"`
	NotesPreviewChars int `yaml:"notes_preview_chars" env:"BRIEFING_NOTES_PREVIEW_CHARS" env-default:"200"`
}

// SyncerConfig holds settings for the in-process consistency sweep.
// The sweep also ships as a standalone binary (cmd/sync) for cron use.
type SyncerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SYNCER_INTERVAL" env-default:"1h"`
}

// TranscriptionConfig selects and configures the speech-to-text backend.
// Provider "stub" returns a canned transcript after a simulated delay;
// "whisper" calls the OpenAI transcription API.
type TranscriptionConfig struct {
	Provider     string        `yaml:"provider"       env:"TRANSCRIPTION_PROVIDER"       env-default:"stub"`
	OpenAIAPIKey string        `yaml:"openai_api_key" env:"TRANSCRIPTION_OPENAI_API_KEY"`
	Language     string        `yaml:"language"       env:"TRANSCRIPTION_LANGUAGE"       env-default:"pt"`
	StubDelay    time.Duration `yaml:"stub_delay"     env:"TRANSCRIPTION_STUB_DELAY"     env-default:"2s"`
}
