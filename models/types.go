package models

import (
	"sync"
	"time"
)

// Player represents a user seated in a game room. ID is the identifier
// of the session that owns the player; the player does not own the
// connection itself.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hand   []Card `json:"hand"`
	IsHost bool   `json:"isHost"`
}

// Room represents a single game in progress. Players is kept in join
// order; CurrentPlayerIndex is only meaningful while State is playing.
// The deck is never serialized, clients only ever see its size.
type Room struct {
	ID                 string                `json:"id"`
	Players            []*Player             `json:"players"`
	MaxPlayers         int                   `json:"maxPlayers"`
	State              string                `json:"state"`
	Deck               []Card                `json:"-"`
	DiscardPile        []Card                `json:"discardPile"`
	CurrentPlayerIndex int                   `json:"currentPlayerIndex"`
	CreatedAt          time.Time             `json:"createdAt"`
	Mutex              sync.RWMutex          `json:"-"`
	Clients            map[string]chan Event `json:"-"`
}

// Event represents a message to be pushed to connected clients
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
