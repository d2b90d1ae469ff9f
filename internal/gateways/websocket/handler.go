package websocket

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and subscribes the client to one
// board's event stream. Browsers cannot set headers on websocket
// connects, so the session key travels as a query parameter here.
func (h *Hub) ServeWS(c *gin.Context) {
	sessionKey := c.Query("session_key")
	if sessionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_key is required"})
		return
	}

	boardID := c.Query("boardId")
	if !utils.IsValidObjectID(boardID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board ID is not valid."})
		return
	}

	user, err := h.sessionSvc.GetUserBySessionKey(c.Request.Context(), sessionKey)
	if err != nil {
		h.logger.Warnw("WebSocket connection rejected: session not found",
			"client_ip", c.ClientIP(),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	client := &Client{
		hub:     h,
		conn:    conn,
		ID:      generateClientID(),
		UserID:  user.ID,
		BoardID: boardID,
	}

	h.register <- client

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister <- client
}
