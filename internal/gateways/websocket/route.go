package websocket

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the board event stream endpoint. Auth happens in
// ServeWS itself via the session_key query parameter.
func RegisterRoutes(rg gin.IRoutes, hub *Hub) {
	rg.GET("/ws", hub.ServeWS)
}
