package db

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/dev-harshvats/CABO/models"
)

const (
	roomCodeLength = 6
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Store is a simple in-memory store for rooms
type Store struct {
	rooms map[string]*models.Room
	mutex sync.RWMutex
}

// NewStore creates a new in-memory store
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*models.Room),
	}
}

// CreateRoom creates a new room hosted by the given player. The room
// code is regenerated until it is unique among live rooms.
func (s *Store) CreateRoom(hostName string, maxPlayers int) (*models.Room, error) {
	if maxPlayers < models.MinRoomPlayers || maxPlayers > models.MaxRoomPlayers {
		return nil, models.ErrInvalidMaxPlayers
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	code := generateRoomCode()
	for {
		if _, exists := s.rooms[code]; !exists {
			break
		}
		code = generateRoomCode()
	}

	room := models.NewRoom(code, hostName, maxPlayers)
	s.rooms[code] = room

	return room, nil
}

// GetRoom returns a room by ID
func (s *Store) GetRoom(roomID string) (*models.Room, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	room, exists := s.rooms[roomID]
	return room, exists
}

// DeleteRoom removes a room from the store
func (s *Store) DeleteRoom(roomID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.rooms[roomID]; !exists {
		return false
	}

	delete(s.rooms, roomID)
	return true
}

// RemoveConnection finds the room holding the player owned by the given
// session, removes that player, and deletes the room if it is now
// empty. A session belongs to at most one room, so the scan stops at
// the first match. Returns the room ID and whether a player was
// removed.
func (s *Store) RemoveConnection(playerID string) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, room := range s.rooms {
		if !room.RemovePlayer(playerID) {
			continue
		}
		if room.PlayerCount() == 0 {
			delete(s.rooms, id)
		}
		return id, true
	}

	return "", false
}

// CleanupEmptyRooms removes rooms that have no players
func (s *Store) CleanupEmptyRooms() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	count := 0
	for id, room := range s.rooms {
		if room.PlayerCount() == 0 {
			delete(s.rooms, id)
			count++
		}
	}

	return count
}

// generateRoomCode returns a short shareable room code
func generateRoomCode() string {
	var b strings.Builder
	b.Grow(roomCodeLength)
	for i := 0; i < roomCodeLength; i++ {
		b.WriteByte(roomCodeChars[rand.IntN(len(roomCodeChars))])
	}
	return b.String()
}
