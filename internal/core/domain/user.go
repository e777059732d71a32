package domain

import "time"

// User represents a member of shop staff who can sign in.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (e.g., UUID)
	Username               string     `json:"username"`
	Name                   string     `json:"name"`
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

func (u *User) GetUserID() string   { return u.UserID }
func (u *User) GetUsername() string { return u.Username }
func (u *User) GetName() string     { return u.Name }
