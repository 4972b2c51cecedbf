package schema

// SocialFavoriteTable represents the 'social.favorite' table
type SocialFavoriteTable struct {
	Table     string
	UserID    string
	WorkID    string
	CreatedAt string
}

// SocialFavorite is the schema definition for social.favorite
var SocialFavorite = SocialFavoriteTable{
	Table:     "social.favorite",
	UserID:    "userid",
	WorkID:    "workid",
	CreatedAt: "createdat",
}
