package card

import (
	"context"

	"github.com/matrixersp/kanbanup-api/internal/app/board"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(id string) (*Card, error)
	FindByBoardID(boardID string) ([]*Card, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(id string) (*Card, error) {
	var card Card
	err := r.db.Where("id = ?", id).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) FindByBoardID(boardID string) ([]*Card, error) {
	var cards []*Card
	err := r.db.
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&cards).Error
	return cards, err
}

// finder adapts the card repository to board.CardFinder so board reads
// can populate list card ids into full documents.
type finder struct {
	repo Repository
}

func NewBoardCardFinder(repo Repository) board.CardFinder {
	return &finder{repo: repo}
}

func (f *finder) FindByBoardID(ctx context.Context, boardID string) ([]board.CardDocument, error) {
	cards, err := f.repo.FindByBoardID(boardID)
	if err != nil {
		return nil, err
	}
	docs := make([]board.CardDocument, 0, len(cards))
	for _, c := range cards {
		docs = append(docs, board.CardDocument{
			ID:        c.ID,
			Title:     c.Title,
			BoardID:   c.BoardID,
			ListID:    c.ListID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return docs, nil
}
