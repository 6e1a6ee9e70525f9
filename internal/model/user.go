package model

import "time"

// User represents a forum member account. Members register themselves and
// participate in the forum; they have no access to the admin back office.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Hash         string    `json:"-"` // Never expose password hash
	Rank         int       `json:"rank"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	TopicsCount  int       `json:"topics_count"`
	RepliesCount int       `json:"replies_count"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// UserSummary is the minimal author projection attached to topics and replies.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rank     int    `json:"rank,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserProfile extends the summary for the topic detail view, where the
// author's bio and topic tally are shown alongside the opening post.
type UserProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Rank        int    `json:"rank"`
	Avatar      string `json:"avatar,omitempty"`
	Bio         string `json:"bio,omitempty"`
	TopicsCount int    `json:"topics_count"`
}

// Username constraints
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MaxBioLength      = 500
)

// Rank maps a numeric member level to its display name and emoji.
type Rank struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Ranks is the fixed five-level progression for forum members.
var Ranks = []Rank{
	{Level: 1, Name: "Script Kiddie", Emoji: "🔰"},
	{Level: 2, Name: "White Hat Trainee", Emoji: "🎓"},
	{Level: 3, Name: "Ethical Hacker", Emoji: "💻"},
	{Level: 4, Name: "Security Engineer", Emoji: "🛡️"},
	{Level: 5, Name: "Cyber Guardian", Emoji: "⚔️"},
}

// RankForLevel returns the rank for a level, defaulting to level 1 when the
// level is outside the table.
func RankForLevel(level int) Rank {
	for _, r := range Ranks {
		if r.Level == level {
			return r
		}
	}
	return Ranks[0]
}

// RegisterRequest represents a member registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request for either identity domain.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
