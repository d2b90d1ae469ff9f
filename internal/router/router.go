package router

import (
	"github.com/matrixersp/kanbanup-api/internal/app/board"
	"github.com/matrixersp/kanbanup-api/internal/app/card"
	"github.com/matrixersp/kanbanup-api/internal/app/health"
	"github.com/matrixersp/kanbanup-api/internal/app/list"
	"github.com/matrixersp/kanbanup-api/internal/app/session"
	"github.com/matrixersp/kanbanup-api/internal/app/user"
	"github.com/matrixersp/kanbanup-api/internal/gateways/websocket"
	"github.com/matrixersp/kanbanup-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler, sessions session.Service) {
	rg := r.Engine.Group("/api")
	rg.Use(middleware.Auth(sessions))
	board.RegisterRoutes(rg, handler)
}

// List routes carry no auth middleware, matching the public surface:
// list mutations are authorized through the board ids they reference.
func (r *Router) RegisterListRoutes(handler list.Handler) {
	list.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterCardRoutes(handler card.Handler, sessions session.Service) {
	rg := r.Engine.Group("/api")
	rg.Use(middleware.Auth(sessions))
	card.RegisterRoutes(rg, handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
