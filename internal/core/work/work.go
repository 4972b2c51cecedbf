// Copyright (c) 2026 Creata. All rights reserved.

/*
Package work defines the core domain entities for the Creata catalogue.

It manages the lifecycle of creative works (novels, comics, scripts, worlds,
games, articles) including publication state, tagging, and like metrics.

Core Responsibility:

  - Catalogue: Defines publication statuses (Draft, Published) and work types.
  - Discovery: Powers trending and free-text search over published works.
  - Engagement: Tracks like counts and per-viewer favorite state.

This package acts as the source of truth for all work-related data models.
*/
package work

import "time"

// # Domain Enums

// Status represents the publication status of a work.
type Status string

const (
	// StatusDraft indicates the work is visible only to its author.
	StatusDraft Status = "draft"

	// StatusPublished indicates the work is publicly discoverable.
	StatusPublished Status = "published"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Type classifies the creative format of a work.
type Type string

const (
	TypeNovel   Type = "novel"
	TypeComic   Type = "comic"
	TypeScript  Type = "script"
	TypeWorld   Type = "world"
	TypeGame    Type = "game"
	TypeArticle Type = "article"
)

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case
		TypeNovel,
		TypeComic,
		TypeScript,
		TypeWorld,
		TypeGame,
		TypeArticle:
		return true
	}
	return false
}

// # Defaults

const (
	// DefaultCoverURL is the placeholder cover assigned to new works.
	DefaultCoverURL = "/images/placeholder-cover.png"

	// DefaultType is assigned when a new work omits its format.
	DefaultType = TypeArticle
)

// # Core Entities

// Work is the central aggregate of the Creata domain.
// It represents a single creative work in the catalogue.
type Work struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"` // URL-safe identifier
	AuthorID    string   `json:"author_id"`
	Author      string   `json:"author"` // Denormalized display name
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	CoverURL    string   `json:"cover_url"`
	Status      Status   `json:"status"`
	Type        Type     `json:"type"`
	Tags        []string `json:"tags"`

	// AssetIDs lists the building blocks attached to this work.
	// Hydrated from the asset store; never written directly.
	AssetIDs []string `json:"asset_ids"`

	// # Engagement Metrics
	LikesCount int  `json:"likes_count"`
	IsLiked    bool `json:"is_liked"` // Resolved per viewer; false for anonymous requests

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries a partial modification of a work.
//
// Nil pointers mean "leave unchanged". This distinguishes clearing a field
// (pointer to zero value) from omitting it entirely.
type Update struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Type        *Type     `json:"type,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldAuthorID    = "author_id"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldCoverURL    = "cover_url"
	FieldStatus      = "status"
	FieldType        = "type"
	FieldTags        = "tags"
	FieldQuery       = "q"
)
