package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/app/board"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateList(ctx context.Context, boardID, title string) (*board.List, error)
	UpdateListTitle(ctx context.Context, listID, boardID, title string) (*board.List, error)
	DeleteList(ctx context.Context, listID, boardID string) error
}

type service struct {
	repo     board.Repository
	boardSvc board.Service
	dbConn   *gorm.DB
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(
	repo board.Repository,
	boardSvc board.Service,
	dbConn *gorm.DB,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		boardSvc: boardSvc,
		dbConn:   dbConn,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// CreateList appends a new empty list to the board's sequence and
// persists the whole aggregate.
func (s *service) CreateList(ctx context.Context, boardID, title string) (*board.List, error) {
	b, err := s.loadBoard(boardID)
	if err != nil {
		return nil, err
	}

	b.Lists = append(b.Lists, board.List{
		ID:    utils.NewObjectID(),
		Title: title,
		Cards: []string{},
	})
	if err := s.repo.Save(b); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	s.afterMutation(ctx, boardID)
	return &b.Lists[len(b.Lists)-1], nil
}

func (s *service) UpdateListTitle(ctx context.Context, listID, boardID, title string) (*board.List, error) {
	b, err := s.loadBoard(boardID)
	if err != nil {
		return nil, err
	}

	l := b.List(listID)
	if l == nil {
		return nil, apperror.NewNotFound("list")
	}

	l.Title = title
	if err := s.repo.Save(b); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	s.afterMutation(ctx, boardID)
	return l, nil
}

// DeleteList splices the list out of the board and deletes its card rows
// in the same transaction, so removing a column never orphans cards.
func (s *service) DeleteList(ctx context.Context, listID, boardID string) error {
	err := s.dbConn.Transaction(func(tx *gorm.DB) error {
		var b board.Board
		if err := tx.Where("id = ?", boardID).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFound("board")
			}
			return err
		}

		if !b.RemoveList(listID) {
			return apperror.NewNotFound("list")
		}

		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM cards WHERE list_id = ?", listID).Error
	})
	if err != nil {
		return err
	}

	s.afterMutation(ctx, boardID)
	return nil
}

func (s *service) loadBoard(boardID string) (*board.Board, error) {
	b, err := s.repo.FindByID(boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("board")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	return b, nil
}

func (s *service) afterMutation(ctx context.Context, boardID string) {
	s.boardSvc.InvalidateBoardCache(ctx, boardID)
	s.eventBus.Publish("board_updated", map[string]interface{}{"boardId": boardID})
}
