package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audio is a transcription job tied 1:1 to a visit. It moves from
// processing to completed (transcript filled) or failed (error filled);
// failures never propagate to the request that started the job.
type Audio struct {
	ID                      uuid.UUID
	VisitID                 uuid.UUID
	Status                  AudioStatus
	AudioURL                string
	Transcript              *string
	Duration                *int
	Progress                int
	Error                   *string
	EstimatedProcessingTime *int
	ManuallyEdited          bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
	ProcessedAt             *time.Time
	FailedAt                *time.Time
}

// AudioStatusView is the JSON shape returned for transcription job
// polling. Optional fields are omitted rather than sent as null, matching
// the established wire convention.
type AudioStatusView struct {
	ID                     string      `json:"id"`
	VisitID                string      `json:"visitId"`
	Status                 AudioStatus `json:"status"`
	Progress               int         `json:"progress"`
	EstimatedTimeRemaining *int        `json:"estimatedTimeRemaining"`
	CreatedAt              string      `json:"createdAt"`
	Transcript             *string     `json:"transcript,omitempty"`
	AudioURL               string      `json:"audioUrl"`
	Duration               *int        `json:"duration,omitempty"`
	ProcessedAt            *string     `json:"processedAt,omitempty"`
	Error                  *string     `json:"error,omitempty"`
	FailedAt               *string     `json:"failedAt,omitempty"`
	ManuallyEdited         bool        `json:"manuallyEdited"`
}
