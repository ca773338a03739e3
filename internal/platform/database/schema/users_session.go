package schema

// UserSessionTable represents the 'users.session' table
type UserSessionTable struct {
	Table     string
	ID        string
	UserID    string
	TokenHash string
	UserAgent string
	IPAddress string
	ExpiresAt string
	IsRevoked string
	CreatedAt string
}

// UserSession is the schema definition for users.session
var UserSession = UserSessionTable{
	Table:     "users.session",
	ID:        "id",
	UserID:    "user_id",
	TokenHash: "token_hash",
	UserAgent: "user_agent",
	IPAddress: "ip_address",
	ExpiresAt: "expires_at",
	IsRevoked: "is_revoked",
	CreatedAt: "created_at",
}
