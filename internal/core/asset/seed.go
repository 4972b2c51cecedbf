// Copyright (c) 2026 Creata. All rights reserved.

package asset

import (
	"time"

	"github.com/creata-app/creata/pkg/pointer"
)

// saltRoadID is the seeded work these fixtures belong to; seedAuthorID
// matches the demo author account.
const (
	saltRoadID   = "0191c2f0-4a00-7000-8000-00000000a001"
	seedAuthorID = "0191c2f0-4a00-7000-8000-000000000002"
)

// DemoAssets returns the fixture assets loaded by the memory storage
// backend. The relation graph is intentionally cyclic: the protagonist
// references the setting, the setting references the scene, and the
// scene references the protagonist back.
func DemoAssets() []*Asset {
	seededAt := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	return []*Asset{
		{
			ID:            "0191c2f0-4a00-7000-8000-00000000b001",
			AuthorID:      seedAuthorID,
			Name:          "Protagonist",
			Type:          TypeCharacter,
			WorkID:        pointer.To(saltRoadID),
			Content:       "Mara Voss, caravan navigator. Reads salt currents the way sailors read stars.",
			RelatedAssets: []string{"0191c2f0-4a00-7000-8000-00000000b002"},
			Metadata: &Metadata{
				Age:    "27",
				Gender: "female",
				Tags:   []string{"lead"},
				Extra:  map[string]string{"voice": "alto"},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:            "0191c2f0-4a00-7000-8000-00000000b002",
			AuthorID:      seedAuthorID,
			Name:          "Harbor District",
			Type:          TypeSetting,
			WorkID:        pointer.To(saltRoadID),
			Content:       "The drowned quarter where the caravans resupply between crossings.",
			RelatedAssets: []string{"0191c2f0-4a00-7000-8000-00000000b003"},
			CreatedAt:     seededAt.Add(time.Hour),
			UpdatedAt:     seededAt.Add(time.Hour),
		},
		{
			ID:            "0191c2f0-4a00-7000-8000-00000000b003",
			AuthorID:      seedAuthorID,
			Name:          "Opening Scene",
			Type:          TypeText,
			WorkID:        pointer.To(saltRoadID),
			Content:       "The brine wind came in before dawn, and with it the smell of the road.",
			RelatedAssets: []string{"0191c2f0-4a00-7000-8000-00000000b001"},
			IsReleaseUnit: true,
			ReleaseKind:   releaseKindPtr(ReleaseChapter),
			CreatedAt:     seededAt.Add(2 * time.Hour),
			UpdatedAt:     seededAt.Add(2 * time.Hour),
		},
	}
}

func releaseKindPtr(kind ReleaseKind) *ReleaseKind { return &kind }
