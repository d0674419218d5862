package handlers

import (
	"net/http"
	"regexp"

	ws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/api/middleware"
	"github.com/theo/arena-forge/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var wsPlayerIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

type WebSocketHandler struct {
	hub           *websocket.Hub
	sessionSecret string
	logger        zerolog.Logger
}

func NewWebSocketHandler(hub *websocket.Hub, sessionSecret string, logger zerolog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		sessionSecret: sessionSecret,
		logger:        logger,
	}
}

// Handle upgrades the connection. Browsers cannot set headers on websocket
// requests, so identity comes from query parameters: a signed token or a
// bare playerId.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var playerID string
	if token := r.URL.Query().Get("token"); token != "" {
		id, err := middleware.PlayerIDFromToken(token, h.sessionSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		playerID = id
	} else {
		playerID = r.URL.Query().Get("playerId")
		if !wsPlayerIDPattern.MatchString(playerID) {
			http.Error(w, "missing or invalid player id", http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn, playerID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
