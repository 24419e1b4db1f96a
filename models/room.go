package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRoom creates a new room in the waiting state with the host as its
// only player. Room IDs are generated by the store, which owns
// collision checks against existing rooms.
func NewRoom(roomID, hostName string, maxPlayers int) *Room {
	room := &Room{
		ID:          roomID,
		Players:     make([]*Player, 0, maxPlayers),
		MaxPlayers:  maxPlayers,
		State:       StateWaiting,
		Deck:        []Card{},
		DiscardPile: []Card{},
		CreatedAt:   time.Now(),
		Clients:     make(map[string]chan Event),
	}

	host := &Player{
		ID:     uuid.New().String(),
		Name:   hostName,
		Hand:   []Card{},
		IsHost: true,
	}

	room.Players = append(room.Players, host)

	return room
}

// Host returns the room's host player
func (r *Room) Host() *Player {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// PlayerCount returns the current number of players in the room
func (r *Room) PlayerCount() int {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return len(r.Players)
}

// AddPlayer seats a new non-host player at the end of the join order.
// When the room reaches MaxPlayers this also starts the game, so a join
// can cascade into dealing and a full state broadcast.
func (r *Room) AddPlayer(name string) (*Player, error) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if len(r.Players) >= r.MaxPlayers {
		return nil, ErrRoomFull
	}

	player := &Player{
		ID:     uuid.New().String(),
		Name:   name,
		Hand:   []Card{},
		IsHost: false,
	}

	r.Players = append(r.Players, player)

	r.broadcastEvent(Event{
		Type:    EventTypePlayerJoined,
		Payload: r.redactedPlayers(),
	})

	if len(r.Players) == r.MaxPlayers && r.State == StateWaiting {
		r.startGame()
	}

	return player, nil
}

// startGame deals a shuffled deck and moves the room to the playing
// state. Caller must hold the write lock. Capacity validation at room
// creation guarantees the deal never runs out of cards.
func (r *Room) startGame() {
	deck := ShuffleDeck(NewDeck())

	for _, player := range r.Players {
		player.Hand = append([]Card{}, deck[:HandSize]...)
		deck = deck[HandSize:]
	}

	r.DiscardPile = []Card{deck[0]}
	r.Deck = deck[1:]
	r.State = StatePlaying
	r.CurrentPlayerIndex = 0

	r.broadcastGameState()
}

// RemovePlayer takes the player with the given session id out of the
// room, preserving the order of everyone else. Returns false if no such
// player is seated. The caller is responsible for deleting the room
// from the store once it is empty.
func (r *Room) RemovePlayer(playerID string) bool {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	index := -1
	for i, p := range r.Players {
		if p.ID == playerID {
			index = i
			break
		}
	}
	if index == -1 {
		return false
	}

	r.Players = append(r.Players[:index], r.Players[index+1:]...)

	// Keep the turn pointer on the same player where possible. If the
	// current player left, the pointer lands on the next one in order.
	if r.State == StatePlaying && len(r.Players) > 0 {
		if index < r.CurrentPlayerIndex {
			r.CurrentPlayerIndex--
		}
		r.CurrentPlayerIndex %= len(r.Players)
	}

	if len(r.Players) > 0 {
		r.broadcastEvent(Event{
			Type:    EventTypePlayerLeft,
			Payload: r.redactedPlayers(),
		})
	}

	return true
}

// DrawCard applies the draw action for the given session: the top deck
// card moves into the caller's hand and the turn passes to the next
// player. Fails without touching room state if the game has not started
// or it is not the caller's turn.
func (r *Room) DrawCard(playerID string) error {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.State != StatePlaying {
		return ErrRoomNotStarted
	}

	// The caller may hold a live subscription to a room it already left
	if len(r.Players) == 0 || r.CurrentPlayerIndex >= len(r.Players) {
		return ErrPlayerNotFound
	}

	current := r.Players[r.CurrentPlayerIndex]
	if current.ID != playerID {
		return ErrNotYourTurn
	}

	if len(r.Deck) == 0 {
		r.rebuildDeckFromDiscard()
	}
	if len(r.Deck) == 0 {
		return ErrDeckEmpty
	}

	current.Hand = append(current.Hand, r.Deck[0])
	r.Deck = r.Deck[1:]

	r.CurrentPlayerIndex = (r.CurrentPlayerIndex + 1) % len(r.Players)
	next := r.Players[r.CurrentPlayerIndex]

	r.broadcastEvent(Event{
		Type: EventTypeMessage,
		Payload: map[string]string{
			"text": fmt.Sprintf("%s drew a card. It's %s's turn.", current.Name, next.Name),
		},
	})

	r.broadcastGameState()

	return nil
}

// rebuildDeckFromDiscard reshuffles the discard pile, minus its top
// card, back into the draw pile. Caller must hold the write lock.
func (r *Room) rebuildDeckFromDiscard() {
	if len(r.DiscardPile) < 2 {
		return
	}

	top := r.DiscardPile[len(r.DiscardPile)-1]
	r.Deck = ShuffleDeck(append([]Card{}, r.DiscardPile[:len(r.DiscardPile)-1]...))
	r.DiscardPile = []Card{top}
}

// Subscribe registers the given session to receive room events. A
// second subscription for the same session replaces the first.
func (r *Room) Subscribe(playerID string) chan Event {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if old, exists := r.Clients[playerID]; exists {
		close(old)
	}

	eventChan := make(chan Event, 16)
	r.Clients[playerID] = eventChan

	return eventChan
}

// Unsubscribe removes a session's event channel. The channel argument
// guards against closing a newer subscription for the same session.
func (r *Room) Unsubscribe(playerID string, eventChan chan Event) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if current, exists := r.Clients[playerID]; exists && current == eventChan {
		delete(r.Clients, playerID)
		close(eventChan)
	}
}

// SendTo delivers an event to a single session, if subscribed
func (r *Room) SendTo(playerID string, event Event) {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	r.sendEvent(playerID, event)
}

// broadcastEvent sends an event to all subscribed clients. Caller must
// hold at least the read lock.
func (r *Room) broadcastEvent(event Event) {
	for playerID := range r.Clients {
		r.sendEvent(playerID, event)
	}
}

// sendEvent pushes one event to one client without blocking; a client
// that has stopped draining its channel just misses events.
func (r *Room) sendEvent(playerID string, event Event) {
	client, exists := r.Clients[playerID]
	if !exists {
		return
	}

	select {
	case client <- event:
		// Event sent successfully
	default:
		// Client might be blocked, but we don't want to block here
	}
}
