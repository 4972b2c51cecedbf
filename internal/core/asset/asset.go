// Copyright (c) 2026 Creata. All rights reserved.

/*
Package asset defines the building blocks that compose a work.

An asset is any named piece of creative material: an idea, a text fragment,
an image, a character sheet, a setting description. Assets can reference
each other freely, forming an unconstrained directed graph (cycles allowed),
and may optionally be grouped into release units (chapters, episodes,
bundles).
*/
package asset

import "time"

// # Domain Enums

// Type classifies the kind of material an asset holds.
type Type string

const (
	TypeIdea      Type = "idea"
	TypeText      Type = "text"
	TypeImage     Type = "image"
	TypeAudio     Type = "audio"
	TypeLink      Type = "link"
	TypeCharacter Type = "character"
	TypeSetting   Type = "setting"
)

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case
		TypeIdea,
		TypeText,
		TypeImage,
		TypeAudio,
		TypeLink,
		TypeCharacter,
		TypeSetting:
		return true
	}
	return false
}

// ReleaseKind classifies how a release unit is packaged.
type ReleaseKind string

const (
	ReleaseChapter ReleaseKind = "chapter"
	ReleaseEpisode ReleaseKind = "episode"
	ReleaseBundle  ReleaseKind = "bundle"
	ReleaseBonus   ReleaseKind = "bonus"
)

// IsValid reports whether k is a recognised [ReleaseKind] value.
func (k ReleaseKind) IsValid() bool {
	switch k {
	case ReleaseChapter, ReleaseEpisode, ReleaseBundle, ReleaseBonus:
		return true
	}
	return false
}

// # Core Entities

// Metadata carries the structured descriptors of an asset.
//
// The well-known fields are closed; anything else a client wants to attach
// goes into Extra as free-form string pairs.
type Metadata struct {
	Age    string            `json:"age,omitempty"`
	Gender string            `json:"gender,omitempty"`
	Tags   []string          `json:"tags,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// Creation defaults applied when the caller omits a field.
const (
	DefaultName = "Untitled"
	DefaultType = TypeIdea

	DefaultReleaseKind = ReleaseChapter
)

// Asset is a single building block of creative material.
type Asset struct {
	ID       string `json:"id"`
	AuthorID string `json:"author_id"`
	Name     string `json:"name"`
	Type     Type   `json:"type"`

	// WorkID attaches the asset to a work. Nil for free-floating assets.
	WorkID *string `json:"work_id,omitempty"`

	// ParentID nests the asset under another asset. Nil for roots.
	ParentID *string `json:"parent_id,omitempty"`

	Content  string    `json:"content,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`

	// RelatedAssets holds outgoing edges of the asset graph. The graph is
	// unconstrained: cycles and self-references are legal.
	RelatedAssets []string `json:"related_assets"`

	// # Release Packaging
	IsReleaseUnit bool         `json:"is_release_unit"`
	ReleaseKind   *ReleaseKind `json:"release_kind,omitempty"`
	PricingPlanID *string      `json:"pricing_plan_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries a partial modification of an asset. Nil pointers mean
// "leave unchanged".
type Update struct {
	Name          *string      `json:"name,omitempty"`
	Type          *Type        `json:"type,omitempty"`
	WorkID        *string      `json:"work_id,omitempty"`
	ParentID      *string      `json:"parent_id,omitempty"`
	Content       *string      `json:"content,omitempty"`
	Metadata      *Metadata    `json:"metadata,omitempty"`
	RelatedAssets *[]string    `json:"related_assets,omitempty"`
	IsReleaseUnit *bool        `json:"is_release_unit,omitempty"`
	ReleaseKind   *ReleaseKind `json:"release_kind,omitempty"`
	PricingPlanID *string      `json:"pricing_plan_id,omitempty"`
}

// # Field Identifiers

const (
	FieldID            = "id"
	FieldAuthorID      = "author_id"
	FieldName          = "name"
	FieldType          = "type"
	FieldWorkID        = "work_id"
	FieldParentID      = "parent_id"
	FieldReleaseKind   = "release_kind"
	FieldRelatedAssets = "related_assets"
	FieldQuery         = "q"
)
