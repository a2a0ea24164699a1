package domain

import "strings"

// EditorialStatus is the workflow stage of a status-bearing content entity.
type EditorialStatus string

const (
	StatusDraft     EditorialStatus = "DRAFT"
	StatusReview    EditorialStatus = "REVIEW"
	StatusPublished EditorialStatus = "PUBLISHED"
	StatusArchived  EditorialStatus = "ARCHIVED"
)

func (s EditorialStatus) String() string { return string(s) }

func (s EditorialStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ParseEditorialStatus accepts any casing and surrounding whitespace.
func ParseEditorialStatus(raw string) (EditorialStatus, error) {
	s := EditorialStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", NewValidationError("status", "unknown status "+quote(raw))
	}
	return s, nil
}

// EntityType identifies the kind of domain entity (used in audit events).
type EntityType string

const (
	EntityTypeLanguage          EntityType = "LANGUAGE"
	EntityTypeLemma             EntityType = "LEMMA"
	EntityTypeMeaning           EntityType = "MEANING"
	EntityTypeSurfaceForm       EntityType = "SURFACE_FORM"
	EntityTypeUsageSentence     EntityType = "USAGE_SENTENCE"
	EntityTypeLemmaSentenceLink EntityType = "LEMMA_SENTENCE_LINK"
	EntityTypePronunciation     EntityType = "PRONUNCIATION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeLanguage, EntityTypeLemma, EntityTypeMeaning, EntityTypeSurfaceForm,
		EntityTypeUsageSentence, EntityTypeLemmaSentenceLink, EntityTypePronunciation:
		return true
	}
	return false
}

// Event returns the conventional event tag for an action on this entity type,
// e.g. EntityTypeLemma.Event("CREATED") == "LEMMA_CREATED".
func (e EntityType) Event(action string) string {
	return string(e) + "_" + action
}

// Audit actions used to build event tags via EntityType.Event.
const (
	ActionCreated       = "CREATED"
	ActionUpdated       = "UPDATED"
	ActionDeleted       = "DELETED"
	ActionStatusChanged = "STATUS_CHANGED"
	ActionEnabled       = "ENABLED"
	ActionDisabled      = "DISABLED"
)

// OwnerType selects which parent entity a pronunciation belongs to.
type OwnerType string

const (
	OwnerTypeLemma    OwnerType = "LEMMA"
	OwnerTypeSentence OwnerType = "SENTENCE"
)

func (o OwnerType) String() string { return string(o) }

func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeLemma, OwnerTypeSentence:
		return true
	}
	return false
}

// ParseOwnerType normalizes and validates a polymorphic owner tag.
func ParseOwnerType(raw string) (OwnerType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError("owner_type", "required")
	}
	o := OwnerType(strings.ToUpper(trimmed))
	if !o.IsValid() {
		return "", NewValidationError("owner_type", "unsupported owner type "+quote(raw))
	}
	return o, nil
}

// LinkType classifies how a lemma appears in a usage sentence.
type LinkType string

const (
	LinkTypeExact     LinkType = "EXACT"
	LinkTypeInflected LinkType = "INFLECTED"
	LinkTypeDerived   LinkType = "DERIVED"
	LinkTypeRelated   LinkType = "RELATED"
)

func (l LinkType) String() string { return string(l) }

func (l LinkType) IsValid() bool {
	switch l {
	case LinkTypeExact, LinkTypeInflected, LinkTypeDerived, LinkTypeRelated:
		return true
	}
	return false
}

// ParseLinkType returns LinkTypeExact for a blank value.
func ParseLinkType(raw string) (LinkType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return LinkTypeExact, nil
	}
	l := LinkType(strings.ToUpper(trimmed))
	if !l.IsValid() {
		return "", NewValidationError("link_type", "unknown link type "+quote(raw))
	}
	return l, nil
}

func quote(s string) string { return "\"" + s + "\"" }
