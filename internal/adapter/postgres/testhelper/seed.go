package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

const seedActor = "seed@example.com"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLanguage inserts a language with a unique code that fits the ten
// character limit. Returns the stored domain.Language.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, enabled bool) domain.Language {
	t.Helper()

	lang := domain.Language{
		Code:    "x" + uniqueSuffix(),
		Name:    "Test Language",
		Script:  "Deva",
		Enabled: enabled,
	}
	lang.ID = uuid.NewString()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO languages (id, created_by, last_modified_by, code, name, script, enabled)
		 VALUES ($1, $2, $2, $3, $4, $5, $6)
		 RETURNING created_at, last_modified_at`,
		lang.ID, seedActor, lang.Code, lang.Name, lang.Script, lang.Enabled,
	).Scan(&lang.CreatedAt, &lang.LastModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage: %v", err)
	}
	lang.CreatedBy, lang.LastModifiedBy = seedActor, seedActor

	return lang
}

// SeedLemma inserts a lemma in the given language and status.
func SeedLemma(t *testing.T, pool *pgxpool.Pool, language string, status domain.EditorialStatus) domain.Lemma {
	t.Helper()

	lemma := domain.Lemma{
		Language:    language,
		LemmaNative: "शब्द-" + uniqueSuffix(),
		Status:      status,
	}
	lemma.ID = uuid.NewString()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO lemmas (id, created_by, last_modified_by, language, lemma_native, status)
		 VALUES ($1, $2, $2, $3, $4, $5)
		 RETURNING created_at, last_modified_at`,
		lemma.ID, seedActor, lemma.Language, lemma.LemmaNative, string(lemma.Status),
	).Scan(&lemma.CreatedAt, &lemma.LastModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLemma: %v", err)
	}
	lemma.CreatedBy, lemma.LastModifiedBy = seedActor, seedActor

	return lemma
}

// SeedSentence inserts a usage sentence in the given language and status.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, language string, status domain.EditorialStatus) domain.UsageSentence {
	t.Helper()

	s := domain.UsageSentence{
		Language:       language,
		SentenceNative: "वाक्य " + uniqueSuffix(),
		Register:       domain.DefaultRegister,
		Status:         status,
	}
	s.ID = uuid.NewString()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO usage_sentences (id, created_by, last_modified_by, language, sentence_native, register, status)
		 VALUES ($1, $2, $2, $3, $4, $5, $6)
		 RETURNING created_at, last_modified_at`,
		s.ID, seedActor, s.Language, s.SentenceNative, s.Register, string(s.Status),
	).Scan(&s.CreatedAt, &s.LastModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSentence: %v", err)
	}
	s.CreatedBy, s.LastModifiedBy = seedActor, seedActor

	return s
}

// SeedLink links a lemma to a sentence with link type EXACT and returns the link id.
func SeedLink(t *testing.T, pool *pgxpool.Pool, lemmaID, sentenceID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO lemma_sentence_links (id, created_by, last_modified_by, lemma_id, sentence_id)
		 VALUES ($1, $2, $2, $3, $4)`,
		id, seedActor, lemmaID, sentenceID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}
	return id
}

// SeedPronunciation attaches a recording to an owner and returns its id.
func SeedPronunciation(t *testing.T, pool *pgxpool.Pool, ownerType domain.OwnerType, ownerID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO pronunciations (id, created_by, last_modified_by, owner_type, owner_id, audio_uri)
		 VALUES ($1, $2, $2, $3, $4, $5)`,
		id, seedActor, string(ownerType), ownerID, "audio/"+uniqueSuffix()+".mp3",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPronunciation: %v", err)
	}
	return id
}
