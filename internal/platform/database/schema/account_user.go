package schema

// AccountUserTable represents the 'account.user' table
type AccountUserTable struct {
	Table           string
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	AvatarURL       string
	Bio             string
	Role            string
	ThemePreference string
	CreatedAt       string
	UpdatedAt       string
}

// AccountUser is the schema definition for account.user
var AccountUser = AccountUserTable{
	Table:           "account.user",
	ID:              "id",
	Name:            "name",
	Email:           "email",
	PasswordHash:    "passwordhash",
	AvatarURL:       "avatarurl",
	Bio:             "bio",
	Role:            "role",
	ThemePreference: "themepreference",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t AccountUserTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.PasswordHash, t.AvatarURL, t.Bio, t.Role, t.ThemePreference, t.CreatedAt, t.UpdatedAt}
}
