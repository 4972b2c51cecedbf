package schema

// CoreAssetTable represents the 'core.asset' table
type CoreAssetTable struct {
	Table         string
	ID            string
	AuthorID      string
	WorkID        string
	ParentID      string
	Name          string
	Type          string
	Content       string
	Metadata      string
	RelatedAssets string
	IsReleaseUnit string
	ReleaseKind   string
	PricingPlanID string
	CreatedAt     string
	UpdatedAt     string
}

// CoreAsset is the schema definition for core.asset
var CoreAsset = CoreAssetTable{
	Table:         "core.asset",
	ID:            "id",
	AuthorID:      "authorid",
	WorkID:        "workid",
	ParentID:      "parentid",
	Name:          "name",
	Type:          "type",
	Content:       "content",
	Metadata:      "metadata",
	RelatedAssets: "relatedassets",
	IsReleaseUnit: "isreleaseunit",
	ReleaseKind:   "releasekind",
	PricingPlanID: "pricingplanid",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CoreAssetTable) Columns() []string {
	return []string{t.ID, t.AuthorID, t.WorkID, t.ParentID, t.Name, t.Type, t.Content, t.Metadata, t.RelatedAssets, t.IsReleaseUnit, t.ReleaseKind, t.PricingPlanID, t.CreatedAt, t.UpdatedAt}
}
