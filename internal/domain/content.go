package domain

import (
	"fmt"
	"time"
)

// Auditable carries the identity and bookkeeping columns shared by every
// persisted entity. Timestamps are written by the database in UTC.
type Auditable struct {
	ID             string
	CreatedBy      string
	CreatedAt      time.Time
	LastModifiedBy string
	LastModifiedAt time.Time
	Version        int64
}

// Language gates which content may be created. Code is unique (ISO 639-1 or similar).
type Language struct {
	Auditable
	Code                  string
	Name                  string
	Script                string
	TransliterationScheme *string
	Enabled               bool
}

// Lemma is a dictionary headword. (Language, LemmaNative) is unique.
type Lemma struct {
	Auditable
	Language     string
	LemmaNative  string
	LemmaLatin   *string
	PartOfSpeech *string
	Notes        *string
	Status       EditorialStatus
}

// IsPublished reports whether the lemma is visible on public paths.
func (l *Lemma) IsPublished() bool { return l.Status == StatusPublished }

// Meaning is a gloss of a lemma in another language.
// (LemmaID, MeaningLanguage, Priority) is unique; lower priority sorts first.
type Meaning struct {
	Auditable
	LemmaID         string
	MeaningLanguage string
	MeaningText     string
	Priority        int
}

// SurfaceForm is an inflected or alternate spelling of a lemma.
// (LemmaID, FormNative) is unique.
type SurfaceForm struct {
	Auditable
	LemmaID    string
	FormNative string
	FormLatin  *string
	FormType   *string
	Notes      *string
}

// UsageSentence is an example sentence with its own editorial workflow.
type UsageSentence struct {
	Auditable
	Language       string
	SentenceNative string
	SentenceLatin  *string
	Translation    *string
	Register       string
	Explanation    *string
	Difficulty     *int
	Status         EditorialStatus
}

// IsPublished reports whether the sentence is visible on public paths.
func (s *UsageSentence) IsPublished() bool { return s.Status == StatusPublished }

// LemmaSentenceLink associates a lemma with a usage sentence.
// SurfaceFormID is a soft reference: it is never validated and may dangle
// after the surface form is deleted. Readers must tolerate that.
type LemmaSentenceLink struct {
	Auditable
	LemmaID       string
	SentenceID    string
	SurfaceFormID *string
	LinkType      LinkType
}

// Pronunciation is an audio recording attached to a lemma or a sentence.
// OwnerID is not a foreign key; OwnerType decides what it points at.
type Pronunciation struct {
	Auditable
	OwnerType  OwnerType
	OwnerID    string
	Speaker    *string
	Region     *string
	AudioURI   string
	DurationMs *int
}

// CheckVersion fails with ErrStaleVersion when the caller read an older
// version than the one stored. A nil expectation always passes.
func CheckVersion(expected *int64, stored Auditable) error {
	if expected == nil || *expected == stored.Version {
		return nil
	}
	return fmt.Errorf("expected version %d, stored %d: %w", *expected, stored.Version, ErrStaleVersion)
}
