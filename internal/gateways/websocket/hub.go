package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/matrixersp/kanbanup-api/internal/app/session"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub     *Hub
	conn    ClientConn
	ID      string
	UserID  string
	BoardID string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub fans board events out to the clients watching each board.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	sessionSvc session.Service
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, sessionSvc session.Service, eventBus *utils.EventBus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		eventBus:   eventBus,
		sessionSvc: sessionSvc,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	events := h.eventBus.SubscribeCh()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"board_id", client.BoardID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event utils.Event) {
	boardID := eventBoardID(event)
	if boardID == "" {
		return
	}

	for client := range h.clients {
		if client.BoardID != boardID {
			continue
		}
		if err := client.conn.WriteJSON(event); err != nil {
			h.logger.Warnw("Failed to write event to client",
				"client_id", client.ID,
				"event", event.Event,
				"error", err,
			)
			delete(h.clients, client)
			client.conn.Close()
		}
	}
}

func eventBoardID(event utils.Event) string {
	data, ok := event.Data.(map[string]interface{})
	if !ok {
		return ""
	}
	boardID, _ := data["boardId"].(string)
	return boardID
}
