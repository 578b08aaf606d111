package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

const chatDateLayout = "02/01/2006"

// Context narrows a conversation to a KOL and optionally one of its
// visits. FreeMode skips the context lookup entirely.
type Context struct {
	KOLID    *uuid.UUID
	VisitID  *uuid.UUID
	FreeMode bool
}

// SendMessage produces a templated assistant reply. The knowledge base is
// searched with the lowercased message terms and the reply cites up to
// five matching documents as sources.
func (s *Service) SendMessage(ctx context.Context, message string, chatCtx Context) (*domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewValidationErrors([]domain.FieldError{
			{Field: "message", Message: "must not be empty"},
		})
	}

	var sb strings.Builder

	if !chatCtx.FreeMode && chatCtx.KOLID != nil {
		kol, err := s.kols.GetByID(ctx, *chatCtx.KOLID)
		switch {
		case err == nil:
			fmt.Fprintf(&sb, "KOL context %s (%s): ", kol.Name, kol.Specialty)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get kol: %w", err)
		}

		if chatCtx.VisitID != nil {
			visit, err := s.visits.GetByID(ctx, *chatCtx.VisitID)
			switch {
			case err == nil:
				fmt.Fprintf(&sb, "Visit scheduled for %s with agenda: %s. ",
					visit.Date.Time().Format(chatDateLayout), visit.Agenda)
			case !errors.Is(err, domain.ErrNotFound):
				return nil, fmt.Errorf("get visit: %w", err)
			}
		}
	}

	lowered := strings.ToLower(message)
	terms := strings.Fields(lowered)

	docs, err := s.documents.SearchRelevant(ctx, terms, maxSources)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	if strings.Contains(lowered, "summarize") || strings.Contains(lowered, "summary") {
		fmt.Fprintf(&sb, "Based on your request, I found %d relevant document(s). ", len(docs))
		if len(docs) > 0 {
			titles := make([]string, len(docs))
			for i, doc := range docs {
				titles[i] = doc.Title
			}
			fmt.Fprintf(&sb, "Main topics: %s.", strings.Join(titles, ", "))
		}
	} else {
		fmt.Fprintf(&sb, "About %q: I found %d related document(s) in the knowledge base.", message, len(docs))
	}

	content := sb.String()
	var sources []domain.ChatSource
	for _, doc := range docs {
		sources = append(sources, domain.ChatSource{Title: doc.Title, URL: doc.URL})
	}

	// No matches drop the context prefix as well.
	if len(docs) == 0 {
		content = fmt.Sprintf("About %q: I did not find specific documents in the knowledge base. Check the document library for more information.", message)
	}

	reply := &domain.ChatMessage{
		ID:      fmt.Sprintf("msg-%d", s.clock.Now().UnixMilli()),
		Role:    "assistant",
		Content: content,
		Sources: sources,
	}

	s.log.InfoContext(ctx, "chat reply generated",
		"sources", len(sources),
		"free_mode", chatCtx.FreeMode,
	)

	return reply, nil
}
