package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("cell coordinates out of bounds")
	ErrUnknownMark      = errors.New("unknown mark")
	ErrInvalidBoardSize = errors.New("board size is out of range")
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrDuplicateMark    = errors.New("mark is already taken by another player")
	ErrEmptyPlayerName  = errors.New("player name is empty")
	ErrNilPlayer        = errors.New("player is nil")
	ErrMalformedMove    = errors.New("malformed move, expected \"row col\" or \"row,col\"")
	ErrMatchUnfinished  = errors.New("moves ran out before the match finished")
	ErrResultsDisabled  = errors.New("results storage is disabled")
)
