package models

// Event types
const (
	EventTypeGameUpdate   = "gameUpdate"
	EventTypePlayerJoined = "playerJoined"
	EventTypePlayerLeft   = "playerLeft"
	EventTypeMessage      = "message"
	EventTypeError        = "error"
)

// Room states
const (
	StateWaiting = "waiting"
	StatePlaying = "playing"
)

// Dealing parameters
const (
	// HandSize is the number of cards dealt to each player
	HandSize = 4

	// MinRoomPlayers and MaxRoomPlayers bound a room's capacity.
	// MaxRoomPlayers keeps the deal card-safe: 12*4+1 <= 52.
	MinRoomPlayers = 2
	MaxRoomPlayers = 12
)

// Action types a client may send over its socket
const (
	ActionDrawCard = "drawCard"
)
