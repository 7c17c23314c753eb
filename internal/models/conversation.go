package models

import "time"

// Conversation pairs exactly two distinct users. Membership never changes
// after creation. Members are kept in sorted order so an unordered pair
// always maps to the same record.
type Conversation struct {
	ID        string    `json:"id"`
	Members   [2]string `json:"members"` // Always 2, sorted
	CreatedAt time.Time `json:"createdAt"`
}

// Counterpart returns the member that is not userID, or "" if userID is not
// a member.
func (c *Conversation) Counterpart(userID string) string {
	if c.Members[0] == userID {
		return c.Members[1]
	}
	if c.Members[1] == userID {
		return c.Members[0]
	}
	return ""
}

// HasMember reports whether userID is one of the two members.
func (c *Conversation) HasMember(userID string) bool {
	return c.Members[0] == userID || c.Members[1] == userID
}
