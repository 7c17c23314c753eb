package models

// User is a registered account. Password holds the bcrypt hash and is never
// serialized. SessionToken is the last token issued at login.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"` // Unique across users
	Password     string `json:"-"`
	SessionToken string `json:"-"`
}
