package models

// PlayerView is a player as seen by a particular viewer: the hand is
// real for the viewer's own entry and hidden sentinels for everyone
// else, always with the true hand length.
type PlayerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hand   []Card `json:"hand"`
	IsHost bool   `json:"isHost"`
}

// RoomView is the redacted, per-viewer snapshot of a room that goes out
// in gameUpdate events. The draw pile itself never leaves the server,
// clients only learn its size.
type RoomView struct {
	ID                 string       `json:"id"`
	Players            []PlayerView `json:"players"`
	MaxPlayers         int          `json:"maxPlayers"`
	State              string       `json:"state"`
	DiscardPile        []Card       `json:"discardPile"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	DeckSize           int          `json:"deckSize"`
}

// ProjectFor returns the room as the given viewer is allowed to see it.
// Pure read; safe to call from any goroutine.
func (r *Room) ProjectFor(viewerID string) RoomView {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.viewFor(r.redactedPlayers(), viewerID)
}

// redactedPlayers builds the player list with every hand replaced by
// hidden sentinels. Computed once per broadcast and shared across
// viewers; viewFor swaps in the one real hand. Caller must hold at
// least the read lock.
func (r *Room) redactedPlayers() []PlayerView {
	views := make([]PlayerView, len(r.Players))
	for i, p := range r.Players {
		hidden := make([]Card, len(p.Hand))
		for j := range hidden {
			hidden[j] = HiddenCard
		}
		views[i] = PlayerView{
			ID:     p.ID,
			Name:   p.Name,
			Hand:   hidden,
			IsHost: p.IsHost,
		}
	}
	return views
}

// viewFor assembles one viewer's snapshot from the shared redacted
// list. Caller must hold at least the read lock.
func (r *Room) viewFor(redacted []PlayerView, viewerID string) RoomView {
	players := make([]PlayerView, len(redacted))
	copy(players, redacted)

	for i, p := range r.Players {
		if p.ID == viewerID {
			players[i].Hand = append([]Card{}, p.Hand...)
			break
		}
	}

	return RoomView{
		ID:                 r.ID,
		Players:            players,
		MaxPlayers:         r.MaxPlayers,
		State:              r.State,
		DiscardPile:        append([]Card{}, r.DiscardPile...),
		CurrentPlayerIndex: r.CurrentPlayerIndex,
		DeckSize:           len(r.Deck),
	}
}

// broadcastGameState sends each subscribed player their own redacted
// snapshot, one addressed event per player. Caller must hold the write
// lock.
func (r *Room) broadcastGameState() {
	redacted := r.redactedPlayers()
	for _, p := range r.Players {
		r.sendEvent(p.ID, Event{
			Type:    EventTypeGameUpdate,
			Payload: r.viewFor(redacted, p.ID),
		})
	}
}
