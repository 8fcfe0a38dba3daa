package model

// User represents a registered user.
type User struct {
	Number   int    `json:"number" gorm:"column:number;primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"column:name;size:255;not null"`
	Email    string `json:"email" gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email"`
	Password string `json:"-" gorm:"column:password;size:64;not null"` // Equality-comparable digest, never exposed
	Token    string `json:"-" gorm:"column:token;size:36;not null;uniqueIndex:idx_users_token"`
}

// TableName implements gorm's table naming hook.
func (User) TableName() string { return "users" }

// Registration is returned once when a user is created: the new number and
// the session token issued at creation time.
type Registration struct {
	Token  string `json:"token"`
	Number int    `json:"number"`
}

// Session is the transient projection returned on login. It is never
// persisted on its own.
type Session struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
