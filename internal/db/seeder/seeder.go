package seeder

import (
	"github.com/matrixersp/kanbanup-api/internal/app/board"
	"github.com/matrixersp/kanbanup-api/internal/app/user"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder creates a demo user and board on an empty dev database.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedDemoBoard(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedDemoBoard() error {
	var count int64
	s.db.Model(&board.Board{}).Count(&count)
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	demoUser := &user.User{
		ID:   utils.NewObjectID(),
		Name: "Demo User",
	}
	if err := s.db.Create(demoUser).Error; err != nil {
		return err
	}

	demoBoard := &board.Board{
		ID:    utils.NewObjectID(),
		Title: "Welcome Board",
		Lists: []board.List{
			{ID: utils.NewObjectID(), Title: "To Do", Cards: []string{}},
			{ID: utils.NewObjectID(), Title: "Doing", Cards: []string{}},
			{ID: utils.NewObjectID(), Title: "Done", Cards: []string{}},
		},
		Participants: []string{demoUser.ID},
		Creator:      demoUser.ID,
	}
	if err := s.db.Create(demoBoard).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded demo board", zap.String("board_id", demoBoard.ID))
	return nil
}
