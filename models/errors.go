package models

import "errors"

// Common errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrRoomNotStarted    = errors.New("game has not started")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrDeckEmpty         = errors.New("no cards left to draw")
	ErrPlayerNotFound    = errors.New("player not found in room")
	ErrInvalidPlayerName = errors.New("invalid player name")
	ErrInvalidMaxPlayers = errors.New("max players must be between 2 and 12")
)
