package schema

// UserFeedbackTable represents the 'users.feedback' table
type UserFeedbackTable struct {
	Table     string
	ID        string
	UserID    string
	Text      string
	Status    string
	CreatedAt string
}

// UserFeedback is the schema definition for users.feedback
var UserFeedback = UserFeedbackTable{
	Table:     "users.feedback",
	ID:        "id",
	UserID:    "user_id",
	Text:      "text",
	Status:    "status",
	CreatedAt: "created_at",
}
