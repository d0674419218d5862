package websocket

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/domain"
)

// Hub fans settlement broadcasts out to subscribed connections. It implements
// service.SettlementNotifier, so settling a season pushes the final
// leaderboard to every client watching that cadence.
type Hub struct {
	clients       map[*Client]bool
	subscriptions map[domain.ArenaType]map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	subscribe     chan *subscribeRequest
	broadcast     chan *broadcastRequest
	stop          chan struct{}
	done          chan struct{} // closed when Run() exits
	stopped       bool
	mu            sync.RWMutex
	logger        zerolog.Logger
}

type subscribeRequest struct {
	client    *Client
	arenaType domain.ArenaType
	on        bool
}

type broadcastRequest struct {
	arenaType domain.ArenaType
	message   *Message
}

func NewHub(logger zerolog.Logger) *Hub {
	subs := make(map[domain.ArenaType]map[*Client]bool, len(domain.ArenaTypes))
	for _, t := range domain.ArenaTypes {
		subs[t] = make(map[*Client]bool)
	}
	return &Hub{
		clients:       make(map[*Client]bool),
		subscriptions: subs,
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		subscribe:     make(chan *subscribeRequest),
		broadcast:     make(chan *broadcastRequest, 16),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
		logger:        logger.With().Str("component", "ws_hub").Logger(),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			for _, t := range domain.ArenaTypes {
				h.subscriptions[t] = make(map[*Client]bool)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					for _, subs := range h.subscriptions {
						delete(subs, client)
					}
					client.Close()
				}
			}
			h.mu.Unlock()

		case req := <-h.subscribe:
			h.handleSubscribe(req)

		case req := <-h.broadcast:
			h.handleBroadcast(req)
		}
	}
}

// Stop shuts down the hub and closes every client channel. It blocks until
// Run has exited.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

func (h *Hub) handleSubscribe(req *subscribeRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	subs, ok := h.subscriptions[req.arenaType]
	if !ok {
		return
	}
	if req.on {
		subs[req.client] = true
		msg, _ := NewMessage(MessageTypeSubscribed, SubscribedPayload{ArenaType: req.arenaType})
		req.client.Send(msg)
	} else {
		delete(subs, req.client)
	}
}

func (h *Hub) handleBroadcast(req *broadcastRequest) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.stopped {
		return
	}
	for client := range h.subscriptions[req.arenaType] {
		client.Send(req.message)
	}
}

// NotifySettled satisfies service.SettlementNotifier. Called from request
// goroutines while the season lock is held, so it must never block: the
// broadcast channel is buffered and overflow drops the notification.
func (h *Hub) NotifySettled(arenaType domain.ArenaType, seasonID string, rows []domain.LeaderboardRow) {
	msg, err := NewMessage(MessageTypeSeasonSettled, SeasonSettledPayload{
		ArenaType: arenaType,
		SeasonID:  seasonID,
		Rows:      rows,
	})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- &broadcastRequest{arenaType: arenaType, message: msg}:
	default:
		h.logger.Warn().Str("season_id", seasonID).Msg("broadcast queue full, settlement notification dropped")
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()
	if stopped {
		return
	}
	h.register <- client
}

// Unregister is safe to call after Stop.
func (h *Hub) Unregister(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()
	if stopped {
		return
	}
	select {
	case h.unregister <- client:
	default:
	}
}
