package websocket

import (
	"encoding/json"
	"time"

	"github.com/theo/arena-forge/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypeSubscribe   MessageType = "SUBSCRIBE"
	MessageTypeUnsubscribe MessageType = "UNSUBSCRIBE"

	// Server to Client
	MessageTypeSubscribed    MessageType = "SUBSCRIBED"
	MessageTypeSeasonSettled MessageType = "SEASON_SETTLED"
	MessageTypeError         MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Client to Server payloads

type SubscribePayload struct {
	ArenaType domain.ArenaType `json:"arenaType"`
}

// Server to Client payloads

type SubscribedPayload struct {
	ArenaType domain.ArenaType `json:"arenaType"`
}

type SeasonSettledPayload struct {
	ArenaType domain.ArenaType        `json:"arenaType"`
	SeasonID  string                  `json:"seasonId"`
	Rows      []domain.LeaderboardRow `json:"rows"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
