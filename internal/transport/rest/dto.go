package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type auditableResponse struct {
	ID             string    `json:"id"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	LastModifiedBy string    `json:"lastModifiedBy"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
	Version        int64     `json:"version"`
}

func toAuditable(a domain.Auditable) auditableResponse {
	return auditableResponse{
		ID:             a.ID,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		LastModifiedBy: a.LastModifiedBy,
		LastModifiedAt: a.LastModifiedAt,
		Version:        a.Version,
	}
}

type languageResponse struct {
	auditableResponse
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	Script                string  `json:"script"`
	TransliterationScheme *string `json:"transliterationScheme,omitempty"`
	Enabled               bool    `json:"enabled"`
}

func toLanguage(l *domain.Language) languageResponse {
	return languageResponse{
		auditableResponse:     toAuditable(l.Auditable),
		Code:                  l.Code,
		Name:                  l.Name,
		Script:                l.Script,
		TransliterationScheme: l.TransliterationScheme,
		Enabled:               l.Enabled,
	}
}

type lemmaResponse struct {
	auditableResponse
	Language     string  `json:"language"`
	LemmaNative  string  `json:"lemmaNative"`
	LemmaLatin   *string `json:"lemmaLatin,omitempty"`
	PartOfSpeech *string `json:"partOfSpeech,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
}

func toLemma(l *domain.Lemma) lemmaResponse {
	return lemmaResponse{
		auditableResponse: toAuditable(l.Auditable),
		Language:          l.Language,
		LemmaNative:       l.LemmaNative,
		LemmaLatin:        l.LemmaLatin,
		PartOfSpeech:      l.PartOfSpeech,
		Notes:             l.Notes,
		Status:            l.Status.String(),
	}
}

type meaningResponse struct {
	auditableResponse
	LemmaID         string `json:"lemmaId"`
	MeaningLanguage string `json:"meaningLanguage"`
	MeaningText     string `json:"meaningText"`
	Priority        int    `json:"priority"`
}

func toMeaning(m *domain.Meaning) meaningResponse {
	return meaningResponse{
		auditableResponse: toAuditable(m.Auditable),
		LemmaID:           m.LemmaID,
		MeaningLanguage:   m.MeaningLanguage,
		MeaningText:       m.MeaningText,
		Priority:          m.Priority,
	}
}

type surfaceFormResponse struct {
	auditableResponse
	LemmaID    string  `json:"lemmaId"`
	FormNative string  `json:"formNative"`
	FormLatin  *string `json:"formLatin,omitempty"`
	FormType   *string `json:"formType,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func toSurfaceForm(f *domain.SurfaceForm) surfaceFormResponse {
	return surfaceFormResponse{
		auditableResponse: toAuditable(f.Auditable),
		LemmaID:           f.LemmaID,
		FormNative:        f.FormNative,
		FormLatin:         f.FormLatin,
		FormType:          f.FormType,
		Notes:             f.Notes,
	}
}

type sentenceResponse struct {
	auditableResponse
	Language       string  `json:"language"`
	SentenceNative string  `json:"sentenceNative"`
	SentenceLatin  *string `json:"sentenceLatin,omitempty"`
	Translation    *string `json:"translation,omitempty"`
	Register       string  `json:"register"`
	Explanation    *string `json:"explanation,omitempty"`
	Difficulty     *int    `json:"difficulty,omitempty"`
	Status         string  `json:"status"`
}

func toSentence(s *domain.UsageSentence) sentenceResponse {
	return sentenceResponse{
		auditableResponse: toAuditable(s.Auditable),
		Language:          s.Language,
		SentenceNative:    s.SentenceNative,
		SentenceLatin:     s.SentenceLatin,
		Translation:       s.Translation,
		Register:          s.Register,
		Explanation:       s.Explanation,
		Difficulty:        s.Difficulty,
		Status:            s.Status.String(),
	}
}

type linkResponse struct {
	auditableResponse
	LemmaID       string  `json:"lemmaId"`
	SentenceID    string  `json:"sentenceId"`
	SurfaceFormID *string `json:"surfaceFormId,omitempty"`
	LinkType      string  `json:"linkType"`
}

func toLink(l *domain.LemmaSentenceLink) linkResponse {
	return linkResponse{
		auditableResponse: toAuditable(l.Auditable),
		LemmaID:           l.LemmaID,
		SentenceID:        l.SentenceID,
		SurfaceFormID:     l.SurfaceFormID,
		LinkType:          l.LinkType.String(),
	}
}

type pronunciationResponse struct {
	auditableResponse
	OwnerType  string  `json:"ownerType"`
	OwnerID    string  `json:"ownerId"`
	Speaker    *string `json:"speaker,omitempty"`
	Region     *string `json:"region,omitempty"`
	AudioURI   string  `json:"audioUri"`
	DurationMs *int    `json:"durationMs,omitempty"`
}

func toPronunciation(p *domain.Pronunciation) pronunciationResponse {
	return pronunciationResponse{
		auditableResponse: toAuditable(p.Auditable),
		OwnerType:         p.OwnerType.String(),
		OwnerID:           p.OwnerID,
		Speaker:           p.Speaker,
		Region:            p.Region,
		AudioURI:          p.AudioURI,
		DurationMs:        p.DurationMs,
	}
}

type auditEventResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	EventType  string          `json:"eventType"`
	Actor      string          `json:"actor"`
	Comment    *string         `json:"comment,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	EventTime  time.Time       `json:"eventTime"`
}

// toAuditEvent passes stored JSON details through verbatim. Details that are
// not valid JSON are returned as a JSON string.
func toAuditEvent(e *domain.AuditEvent) auditEventResponse {
	resp := auditEventResponse{
		ID:         e.ID,
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID,
		EventType:  e.EventType,
		Actor:      e.Actor,
		Comment:    e.Comment,
		EventTime:  e.EventTime,
	}
	if e.Details != nil {
		if json.Valid([]byte(*e.Details)) {
			resp.Details = json.RawMessage(*e.Details)
		} else if b, err := json.Marshal(*e.Details); err == nil {
			resp.Details = b
		}
	}
	return resp
}
