package schema

// CoreWorkTable represents the 'core.work' table
type CoreWorkTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	AuthorID    string
	Author      string
	Description string
	Content     string
	CoverURL    string
	Status      string
	Type        string
	Tags        string
	LikesCount  string
	CreatedAt   string
	UpdatedAt   string
}

// CoreWork is the schema definition for core.work
var CoreWork = CoreWorkTable{
	Table:       "core.work",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	AuthorID:    "authorid",
	Author:      "author",
	Description: "description",
	Content:     "content",
	CoverURL:    "coverurl",
	Status:      "status",
	Type:        "type",
	Tags:        "tags",
	LikesCount:  "likescount",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreWorkTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.AuthorID, t.Author, t.Description, t.Content, t.CoverURL, t.Status, t.Type, t.Tags, t.LikesCount, t.CreatedAt, t.UpdatedAt}
}
