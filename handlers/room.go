package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dev-harshvats/CABO/db"
	"github.com/dev-harshvats/CABO/models"
)

// Package-level WebSocket upgrader
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// standardResponse sends a consistent JSON response
func standardResponse(c *gin.Context, code int, status string, data interface{}, err string) {
	response := gin.H{"status": status}

	if data != nil {
		response["data"] = data
	}

	if err != "" {
		response["error"] = err
	}

	c.JSON(code, response)
}

// clientAction is a message a client sends over its socket
type clientAction struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId,omitempty"`
}

// RoomHandler handles all room-related requests
type RoomHandler struct {
	store *db.Store
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(store *db.Store) *RoomHandler {
	return &RoomHandler{
		store: store,
	}
}

// CreateRoom handles room creation requests
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		MaxPlayers int    `json:"maxPlayers" binding:"required"`
	}

	if err := c.BindJSON(&req); err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, models.ErrInvalidPlayerName.Error())
		return
	}

	if req.Name == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, models.ErrInvalidPlayerName.Error())
		return
	}

	room, err := h.store.CreateRoom(req.Name, req.MaxPlayers)
	if err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, err.Error())
		return
	}

	host := room.Host()

	standardResponse(c, http.StatusCreated, "created", gin.H{
		"roomId":   room.ID,
		"playerID": host.ID,
		"players":  room.ProjectFor(host.ID).Players,
	}, "")
}

// JoinRoom handles requests to join a room
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	roomID := c.Param("id")
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.BindJSON(&req); err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, models.ErrInvalidPlayerName.Error())
		return
	}

	if req.Name == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, models.ErrInvalidPlayerName.Error())
		return
	}

	room, exists := h.store.GetRoom(roomID)
	if !exists {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrRoomNotFound.Error())
		return
	}

	player, err := room.AddPlayer(req.Name)
	if err != nil {
		if errors.Is(err, models.ErrRoomFull) {
			standardResponse(c, http.StatusConflict, "error", nil, err.Error())
			return
		}
		standardResponse(c, http.StatusBadRequest, "error", nil, err.Error())
		return
	}

	standardResponse(c, http.StatusOK, "joined", gin.H{
		"roomId":   room.ID,
		"playerID": player.ID,
		"players":  room.ProjectFor(player.ID).Players,
	}, "")
}

// LeaveRoom handles requests to leave a room
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	roomID := c.Param("id")
	playerID := c.Query("playerID")

	if playerID == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid player ID")
		return
	}

	room, exists := h.store.GetRoom(roomID)
	if !exists {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrRoomNotFound.Error())
		return
	}

	if success := room.RemovePlayer(playerID); !success {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrPlayerNotFound.Error())
		return
	}

	// Cleanup if the room is empty
	if room.PlayerCount() == 0 {
		h.store.DeleteRoom(roomID)
	}

	standardResponse(c, http.StatusOK, "left", nil, "")
}

// GetRoom handles requests to get room information. The caller only
// ever receives their own redacted view, never the raw room.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID := c.Param("id")
	playerID := c.Query("playerID")

	if playerID == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid player ID")
		return
	}

	room, exists := h.store.GetRoom(roomID)
	if !exists {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrRoomNotFound.Error())
		return
	}

	if !h.playerInRoom(room, playerID) {
		standardResponse(c, http.StatusForbidden, "error", nil, models.ErrPlayerNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, room.ProjectFor(playerID))
}

// playerInRoom reports whether the given session owns a seat in the room
func (h *RoomHandler) playerInRoom(room *models.Room, playerID string) bool {
	view := room.ProjectFor(playerID)
	for _, p := range view.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// WebSocketHandler attaches a joined player's session to the room's
// event stream and accepts game actions from it
func (h *RoomHandler) WebSocketHandler(c *gin.Context) {
	roomID := c.Param("id")
	playerID := c.Query("playerID")

	if playerID == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid player ID")
		return
	}

	room, exists := h.store.GetRoom(roomID)
	if !exists {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrRoomNotFound.Error())
		return
	}

	if !h.playerInRoom(room, playerID) {
		standardResponse(c, http.StatusForbidden, "error", nil, models.ErrPlayerNotFound.Error())
		return
	}

	// Use the shared upgrader instead of creating a new one each time
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		standardResponse(c, http.StatusInternalServerError, "error", nil, "Could not upgrade to WebSocket")
		return
	}
	defer conn.Close()

	// Create a channel for this client
	events := room.Subscribe(playerID)
	defer room.Unsubscribe(playerID, events)

	// Send the caller's current view so a player whose join completed
	// the room still observes the deal that happened before the socket
	// was attached.
	initialEvent := models.Event{
		Type:    models.EventTypeGameUpdate,
		Payload: room.ProjectFor(playerID),
	}

	if err := conn.WriteJSON(initialEvent); err != nil {
		return
	}

	// Setup ping ticker for keep-alive
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	// Create a channel to handle client disconnections
	done := make(chan struct{})

	// Handle incoming actions in a separate goroutine
	go h.handleIncomingMessages(conn, room, playerID, done)

	// Main event loop
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// handleIncomingMessages processes actions from the client until the
// connection drops, then removes the player from their room
func (h *RoomHandler) handleIncomingMessages(conn *websocket.Conn, room *models.Room, playerID string, done chan struct{}) {
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// Client disconnected or error occurred
			h.store.RemoveConnection(playerID)
			return
		}

		var action clientAction
		if err := json.Unmarshal(data, &action); err != nil {
			room.SendTo(playerID, models.Event{
				Type:    models.EventTypeError,
				Payload: map[string]string{"message": "malformed action"},
			})
			continue
		}

		switch action.Type {
		case models.ActionDrawCard:
			if err := room.DrawCard(playerID); err != nil {
				room.SendTo(playerID, models.Event{
					Type:    models.EventTypeError,
					Payload: map[string]string{"message": err.Error()},
				})
			}
		default:
			room.SendTo(playerID, models.Event{
				Type:    models.EventTypeError,
				Payload: map[string]string{"message": "unknown action: " + action.Type},
			})
		}
	}
}
