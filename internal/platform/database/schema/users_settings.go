package schema

// UserSettingsTable represents the 'users.settings' table
type UserSettingsTable struct {
	Table   string
	UserID  string
	Percent string
	Size    string
}

// UserSettings is the schema definition for users.settings
var UserSettings = UserSettingsTable{
	Table:   "users.settings",
	UserID:  "user_id",
	Percent: "percent",
	Size:    "size",
}
