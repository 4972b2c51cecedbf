// Copyright (c) 2026 Creata. All rights reserved.

package work

import "time"

// Demo author identities. These match the seeded demo accounts so the
// memory backend presents a coherent dataset out of the box.
const (
	seedAdminID  = "0191c2f0-4a00-7000-8000-000000000001"
	seedAuthorID = "0191c2f0-4a00-7000-8000-000000000002"
)

// DemoWorks returns the fixture catalogue loaded by the memory storage
// backend. The first entry is the newest work.
func DemoWorks() []*Work {
	seededAt := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	return []*Work{
		{
			ID:          "0191c2f0-4a00-7000-8000-00000000a001",
			Title:       "The Salt Road",
			Slug:        "the-salt-road",
			AuthorID:    seedAuthorID,
			Author:      "Alex Rivera",
			Description: "A caravan novel about smugglers crossing a drowned desert.",
			Content:     "Chapter one. The brine wind came in before dawn...",
			CoverURL:    "/images/covers/salt-road.jpg",
			Status:      StatusPublished,
			Type:        TypeNovel,
			Tags:        []string{"fantasy", "adventure"},
			LikesCount:  42,
			CreatedAt:   seededAt.Add(72 * time.Hour),
			UpdatedAt:   seededAt.Add(96 * time.Hour),
		},
		{
			ID:          "0191c2f0-4a00-7000-8000-00000000a002",
			Title:       "Lantern City",
			Slug:        "lantern-city",
			AuthorID:    seedAuthorID,
			Author:      "Alex Rivera",
			Description: "A webcomic set in a city that only exists at night.",
			CoverURL:    "/images/covers/lantern-city.jpg",
			Status:      StatusPublished,
			Type:        TypeComic,
			Tags:        []string{"urban", "mystery", "comic"},
			LikesCount:  87,
			CreatedAt:   seededAt.Add(48 * time.Hour),
			UpdatedAt:   seededAt.Add(48 * time.Hour),
		},
		{
			ID:          "0191c2f0-4a00-7000-8000-00000000a003",
			Title:       "Orbital Gardens",
			Slug:        "orbital-gardens",
			AuthorID:    seedAdminID,
			Author:      "creata",
			Description: "Worldbuilding notes for a ring station agricultural colony.",
			CoverURL:    DefaultCoverURL,
			Status:      StatusPublished,
			Type:        TypeWorld,
			Tags:        []string{"sci-fi", "worldbuilding"},
			LikesCount:  15,
			CreatedAt:   seededAt.Add(24 * time.Hour),
			UpdatedAt:   seededAt.Add(24 * time.Hour),
		},
		{
			ID:          "0191c2f0-4a00-7000-8000-00000000a004",
			Title:       "Draft: Second Act Problems",
			Slug:        "draft-second-act-problems",
			AuthorID:    seedAuthorID,
			Author:      "Alex Rivera",
			Description: "Unfinished essay on screenplay structure.",
			CoverURL:    DefaultCoverURL,
			Status:      StatusDraft,
			Type:        TypeArticle,
			Tags:        []string{"writing"},
			LikesCount:  0,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
	}
}
