package entity

import "time"

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	Draws        int       `json:"draws"`
	CreatedAt    time.Time `json:"created_at"`
}

func (that *Account) GamesPlayed() int {
	return that.Wins + that.Losses + that.Draws
}

type LeaderboardEntry struct {
	UserID     int64    `json:"user_id"`
	Username   string   `json:"username"`
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	Draws      int      `json:"draws"`
	Efficiency *float64 `json:"efficiency"`
}
