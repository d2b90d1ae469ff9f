package board

import (
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	FindForUser(userID string) ([]*Board, error)
	FindByID(id string) (*Board, error)
	Create(board *Board) error
	Save(board *Board) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// participantFilter matches boards whose participants JSONB array
// contains userID.
func participantFilter(userID string) (string, string) {
	return "participants @> ?::jsonb", fmt.Sprintf("[%q]", userID)
}

func (r *repository) FindForUser(userID string) ([]*Board, error) {
	var boards []*Board
	cond, arg := participantFilter(userID)
	err := r.db.
		Where(cond, arg).
		Order("created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) FindByID(id string) (*Board, error) {
	var board Board
	err := r.db.Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) Create(board *Board) error {
	return r.db.Create(board).Error
}

func (r *repository) Save(board *Board) error {
	return r.db.Save(board).Error
}
