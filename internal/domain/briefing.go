package domain

// Briefing is pre-visit guidance assembled by deterministic templating
// from visit history and the KOL's engagement level.
type Briefing struct {
	KOLID              string  `json:"kolId"`
	ContinuityReminder string  `json:"continuityReminder"`
	ContentSuggestion  string  `json:"contentSuggestion"`
	LevelAlert         *string `json:"levelAlert"`
	GeneratedAt        string  `json:"generatedAt"`
}

// ChatSource is a knowledge-base document cited by a chat reply.
type ChatSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ChatMessage is a templated assistant reply with optional sources.
type ChatMessage struct {
	ID      string       `json:"id"`
	Role    string       `json:"role"`
	Content string       `json:"content"`
	Sources []ChatSource `json:"sources,omitempty"`
}
