package types

import (
	"time"

	"github.com/google/uuid"
)

// TranslationTone - register of the translated output
type TranslationTone string

const (
	ToneStandard     TranslationTone = "standard"
	ToneFormal       TranslationTone = "formal"
	ToneInformal     TranslationTone = "informal"
	ToneCasual       TranslationTone = "casual"
	ToneProfessional TranslationTone = "professional"
)

// TranslationStyle - verbosity of the translated output
type TranslationStyle string

const (
	StyleStandard   TranslationStyle = "standard"
	StyleSimplified TranslationStyle = "simplified"
	StyleDetailed   TranslationStyle = "detailed"
)

// TranslationOptions - user-selected options, snapshotted on the record
type TranslationOptions struct {
	Tone               TranslationTone  `json:"tone"`
	Style              TranslationStyle `json:"style"`
	PreserveFormatting bool             `json:"preserveFormatting"`
}

// Table Model (database/migrations/00002.translations.up.sql)
type Translation struct {
	ID                 uuid.UUID        `db:"id" json:"id"`
	UserID             uuid.UUID        `db:"user_id" json:"userId"`
	SourceText         string           `db:"source_text" json:"sourceText"`
	TranslatedText     string           `db:"translated_text" json:"translatedText"`
	SourceLanguage     string           `db:"source_language" json:"sourceLanguage"`
	TargetLanguage     string           `db:"target_language" json:"targetLanguage"`
	Tone               TranslationTone  `db:"tone" json:"tone"`
	Style              TranslationStyle `db:"style" json:"style"`
	PreserveFormatting bool             `db:"preserve_formatting" json:"preserveFormatting"`
	IsFavorite         bool             `db:"is_favorite" json:"isFavorite"`
	TokensUsed         int              `db:"tokens_used" json:"tokensUsed"`
	CreatedAt          time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time        `db:"updated_at" json:"updatedAt"`
}

// TranslationCreateRequest - translate-and-save request
type TranslationCreateRequest struct {
	Text           string           `json:"text" binding:"required"`
	SourceLanguage string           `json:"sourceLanguage"` // empty triggers auto-detection
	TargetLanguage string           `json:"targetLanguage" binding:"required"`
	Tone           TranslationTone  `json:"tone"`
	Style          TranslationStyle `json:"style"`

	PreserveFormatting bool `json:"preserveFormatting"`
}

// Options returns the snapshot stored alongside the record. Omitted tone
// and style fall back to standard, matching the table defaults.
func (r TranslationCreateRequest) Options() TranslationOptions {
	options := TranslationOptions{
		Tone:               r.Tone,
		Style:              r.Style,
		PreserveFormatting: r.PreserveFormatting,
	}
	if options.Tone == "" {
		options.Tone = ToneStandard
	}
	if options.Style == "" {
		options.Style = StyleStandard
	}
	return options
}

// TranslationCreateDBRequest - values persisted after a successful translation
type TranslationCreateDBRequest struct {
	UserID         uuid.UUID
	SourceText     string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
	Options        TranslationOptions
	TokensUsed     int
}

// TranslationQueryOptions - filters for the owner-scoped history listing
type TranslationQueryOptions struct {
	UserID         uuid.UUID
	OnlyFavorites  bool
	TargetLanguage string
	Search         string
	Page           int
	Limit          int
}

// TranslationListResponse - paginated history response
type TranslationListResponse struct {
	Translations []Translation `json:"translations"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"totalPages"`
}

// TranslationFavoriteRequest - explicit favorite flag update
type TranslationFavoriteRequest struct {
	Favorite *bool `json:"favorite" binding:"required"`
}
