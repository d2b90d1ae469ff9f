package app

import (
	"github.com/matrixersp/kanbanup-api/internal/app/board"
	"github.com/matrixersp/kanbanup-api/internal/app/card"
	"github.com/matrixersp/kanbanup-api/internal/app/health"
	"github.com/matrixersp/kanbanup-api/internal/app/list"
	"github.com/matrixersp/kanbanup-api/internal/app/session"
	"github.com/matrixersp/kanbanup-api/internal/app/user"
	"github.com/matrixersp/kanbanup-api/internal/config"
	"github.com/matrixersp/kanbanup-api/internal/db"
	"github.com/matrixersp/kanbanup-api/internal/db/seeder"
	"github.com/matrixersp/kanbanup-api/internal/gateways/websocket"
	"github.com/matrixersp/kanbanup-api/internal/providers/redis"
	"github.com/matrixersp/kanbanup-api/internal/router"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.Env == "dev" {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	userRepo := user.NewRepository(dbConn)
	sessionRepo := session.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	cardRepo := card.NewRepository(dbConn)

	sessionService := session.NewService(sessionRepo, userRepo, redisProvider, cfg.RedisTTL)
	userService := user.NewService(userRepo, sessionService)
	boardService := board.NewService(
		boardRepo,
		card.NewBoardCardFinder(cardRepo),
		userService,
		dbConn,
		redisProvider,
		eventBus,
		logger,
	)
	listService := list.NewService(boardRepo, boardService, dbConn, eventBus, logger)
	cardService := card.NewService(cardRepo, boardRepo, boardService, dbConn, eventBus, logger)

	hub := websocket.NewHub(logger, sessionService, eventBus)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	userHandler := user.NewHandler(userService)
	boardHandler := board.NewHandler(boardService)
	listHandler := list.NewHandler(listService)
	cardHandler := card.NewHandler(cardService)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler, sessionService)
	r.RegisterListRoutes(listHandler)
	r.RegisterCardRoutes(cardHandler, sessionService)
	r.RegisterWebSocketRoutes(hub)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
