package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDailyStatDB holds one user's counters for one UTC calendar day.
type UserDailyStatDB struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Day        time.Time `json:"day" db:"day"`
	SpinCount  int64     `json:"spin_count" db:"spin_count"`
	Winnings   int64     `json:"winnings" db:"winnings"`
	Losses     int64     `json:"losses" db:"losses"`
	WinStreak  int       `json:"win_streak" db:"win_streak"`
	LossStreak int       `json:"loss_streak" db:"loss_streak"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// DailyStatDB is the operator-wide aggregate for one UTC calendar day.
type DailyStatDB struct {
	Day           time.Time `json:"day" db:"day"`
	ActivePlayers int64     `json:"active_players" db:"active_players"`
	TotalSpins    int64     `json:"total_spins" db:"total_spins"`
	TotalWinnings int64     `json:"total_winnings" db:"total_winnings"`
	BiggestWin    int64     `json:"biggest_win" db:"biggest_win"`
	JackpotCount  int64     `json:"jackpot_count" db:"jackpot_count"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// SpinTally is what one settled spin contributes to the daily counters.
type SpinTally struct {
	Win      bool
	Winnings int64
	Losses   int64
	Jackpot  bool
}

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
