package entity

import "time"

const (
	OutcomeWon  = "won"
	OutcomeDraw = "draw"
)

// Move is an accepted placement of a mark.
type Move struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Mark Mark `json:"mark"`
}

type PlayerRecord struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

// MatchResult is the record of a finished match.
type MatchResult struct {
	ID         string         `json:"id"`
	BoardSize  int            `json:"board_size"`
	Players    []PlayerRecord `json:"players"`
	Outcome    string         `json:"outcome"`
	Winner     string         `json:"winner,omitempty"`
	WinnerMark Mark           `json:"winner_mark,omitempty"`
	Moves      []Move         `json:"moves"`
	FinishedAt time.Time      `json:"finished_at"`
}

func (that *MatchResult) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

type Score struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}
