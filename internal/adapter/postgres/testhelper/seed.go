package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medfield/msl-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedKOL creates a KOL at the given engagement level with unique contact
// data. Returns the filled domain.KOL.
func SeedKOL(t *testing.T, pool *pgxpool.Pool, level int) domain.KOL {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	k := domain.KOL{
		ID:          uuid.New(),
		Name:        "Dr. Test " + suffix,
		Specialty:   "Cardiology",
		Institution: "General Hospital " + suffix,
		Email:       "kol-" + suffix + "@example.com",
		Profile:     domain.ProfilePrescriber,
		Level:       level,
		Tags:        []domain.Tag{domain.TagEfficacy},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO kols (id, name, specialty, institution, email, profile, level, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		k.ID, k.Name, k.Specialty, k.Institution, k.Email, string(k.Profile), k.Level,
		[]string{string(domain.TagEfficacy)}, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedKOL insert: %v", err)
	}

	return k
}

// SeedVisit creates a visit for the KOL on the given date/time with the
// given status. Completed visits get notes so they count as reported.
func SeedVisit(t *testing.T, pool *pgxpool.Pool, kol domain.KOL, date domain.Date, timeOfDay string, status domain.VisitStatus) domain.Visit {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	v := domain.Visit{
		ID:           uuid.New(),
		KOLID:        kol.ID,
		KOLName:      kol.Name,
		KOLSpecialty: kol.Specialty,
		Date:         date,
		Time:         timeOfDay,
		Format:       domain.VisitFormatPresential,
		Agenda:       "Discuss trial results",
		Status:       status,
		Tags:         []domain.Tag{domain.TagClinicalData},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status == domain.VisitStatusCompleted {
		notes := "Productive discussion on study endpoints."
		v.Notes = &notes
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO visits (id, kol_id, kol_name, kol_specialty, date, visit_time, format, agenda, status, notes, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		v.ID, v.KOLID, v.KOLName, v.KOLSpecialty, v.Date.Time(), v.Time, string(v.Format),
		v.Agenda, string(v.Status), v.Notes, []string{string(domain.TagClinicalData)},
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVisit insert: %v", err)
	}

	return v
}

// SeedDocument creates a document in the given category tagged with the
// given tags.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, category domain.DocumentCategory, tags ...string) domain.Document {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	if tags == nil {
		tags = []string{}
	}
	d := domain.Document{
		ID:          uuid.New(),
		Title:       "Document " + suffix,
		Category:    category,
		Description: "Reference material " + suffix,
		URL:         "https://example.com/docs/" + suffix,
		Type:        domain.DocumentTypePDF,
		Date:        domain.DateOf(now),
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, title, category, description, url, type, date, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Title, string(d.Category), d.Description, d.URL, string(d.Type),
		d.Date.Time(), d.Tags, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return d
}

// SeedClient creates an API client credential with a unique token.
func SeedClient(t *testing.T, pool *pgxpool.Pool, active bool) domain.Client {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Client{
		ID:        uuid.New(),
		Token:     "tok-" + suffix,
		Name:      "Test Client " + suffix,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO clients (id, token, name, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Token, c.Name, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert: %v", err)
	}

	return c
}
