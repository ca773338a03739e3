package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Patronymic  string
	Role        string
	IsStaff     string
	IsActive    string
	IsSuspended string
	DateJoined  string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Email:       "email",
	Password:    "password_hash",
	FirstName:   "first_name",
	LastName:    "last_name",
	Patronymic:  "patronymic",
	Role:        "role",
	IsStaff:     "is_staff",
	IsActive:    "is_active",
	IsSuspended: "is_suspended",
	DateJoined:  "date_joined",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.FirstName, t.LastName, t.Patronymic,
		t.Role, t.IsStaff, t.IsActive, t.IsSuspended, t.DateJoined,
	}
}
