package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/app/board"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service interface {
	GetCardsByBoardID(ctx context.Context, boardID, userID string) ([]*Card, error)
	GetCardByID(ctx context.Context, cardID, boardID, userID string) (*Card, error)
	CreateCard(ctx context.Context, boardID, listID, userID, title string) (*Card, error)
	RenameCard(ctx context.Context, cardID, boardID, userID, title string) (*Card, error)
	MoveCard(ctx context.Context, cardID, boardID, userID string, source, destination MoveTarget) error
	DeleteCard(ctx context.Context, cardID, boardID, listID, userID string) error
}

type service struct {
	repo     Repository
	boards   board.Repository
	boardSvc board.Service
	dbConn   *gorm.DB
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(
	repo Repository,
	boards board.Repository,
	boardSvc board.Service,
	dbConn *gorm.DB,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		boards:   boards,
		boardSvc: boardSvc,
		dbConn:   dbConn,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) GetCardsByBoardID(ctx context.Context, boardID, userID string) ([]*Card, error) {
	if _, err := s.loadBoardForUser(boardID, userID); err != nil {
		return nil, err
	}
	cards, err := s.repo.FindByBoardID(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}
	return cards, nil
}

func (s *service) GetCardByID(ctx context.Context, cardID, boardID, userID string) (*Card, error) {
	if _, err := s.loadBoardForUser(boardID, userID); err != nil {
		return nil, err
	}

	card, err := s.repo.FindByID(cardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("card")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card: %w", err)
	}
	return card, nil
}

// CreateCard inserts the card row and appends its id to the matched
// list's card sequence in one transaction: a failed board update leaves
// no orphan card behind.
func (s *service) CreateCard(ctx context.Context, boardID, listID, userID, title string) (*Card, error) {
	card := &Card{
		ID:      utils.NewObjectID(),
		Title:   title,
		BoardID: boardID,
		ListID:  listID,
	}

	err := s.dbConn.Transaction(func(tx *gorm.DB) error {
		b, err := lockBoardForUser(tx, boardID, userID)
		if err != nil {
			return err
		}

		l := b.List(listID)
		if l == nil {
			return apperror.NewNotFound("list")
		}

		if err := tx.Create(card).Error; err != nil {
			return err
		}

		l.Cards = append(l.Cards, card.ID)
		return tx.Save(b).Error
	})
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, boardID)
	return card, nil
}

func (s *service) RenameCard(ctx context.Context, cardID, boardID, userID, title string) (*Card, error) {
	if _, err := s.loadBoardForUser(boardID, userID); err != nil {
		return nil, err
	}

	res := s.dbConn.Model(&Card{}).Where("id = ?", cardID).Update("title", title)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NewNotFound("card")
	}

	card, err := s.repo.FindByID(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated card: %w", err)
	}

	s.afterMutation(ctx, boardID)
	return card, nil
}

// MoveCard removes the card id from the source list, inserts it at the
// destination position and updates the card's list back-reference. The
// board aggregate and the card row commit in a single transaction, so
// the one-list-per-card invariant survives a crash between the two
// writes. Removal is by card id: the caller-supplied source index is
// only a verified hint, never trusted blindly.
func (s *service) MoveCard(ctx context.Context, cardID, boardID, userID string, source, destination MoveTarget) error {
	err := s.dbConn.Transaction(func(tx *gorm.DB) error {
		b, err := lockBoardForUser(tx, boardID, userID)
		if err != nil {
			return err
		}

		src := b.List(source.ListID)
		dst := b.List(destination.ListID)
		if src == nil || dst == nil {
			return &apperror.NotFoundError{Message: "The source/destination list was not found."}
		}

		if !src.RemoveCard(cardID, source.Index) {
			return apperror.NewNotFound("card")
		}
		// For a same-list move src and dst alias the same list, so the
		// destination index is interpreted against the post-removal array.
		dst.InsertCard(cardID, destination.Index)

		res := tx.Model(&Card{}).Where("id = ?", cardID).Update("list_id", destination.ListID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFound("card")
		}

		return tx.Save(b).Error
	})
	if err != nil {
		return err
	}

	s.afterMutation(ctx, boardID)
	s.eventBus.Publish("card_moved", map[string]interface{}{
		"boardId": boardID,
		"cardId":  cardID,
		"listId":  destination.ListID,
		"index":   destination.Index,
	})
	return nil
}

// DeleteCard pulls the card id out of its list and deletes the card row
// in one transaction. Deleting an already-deleted card reports the card,
// not the board, as missing.
func (s *service) DeleteCard(ctx context.Context, cardID, boardID, listID, userID string) error {
	err := s.dbConn.Transaction(func(tx *gorm.DB) error {
		b, err := lockBoardForUser(tx, boardID, userID)
		if err != nil {
			return err
		}

		l := b.List(listID)
		if l == nil {
			return apperror.NewNotFound("list")
		}

		if l.RemoveCard(cardID, -1) {
			if err := tx.Save(b).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", cardID).Delete(&Card{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFound("card")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.afterMutation(ctx, boardID)
	return nil
}

func (s *service) loadBoardForUser(boardID, userID string) (*board.Board, error) {
	b, err := s.boards.FindByID(boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("board")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	if !b.HasParticipant(userID) {
		return nil, apperror.NewNotFound("board")
	}
	return b, nil
}

// lockBoardForUser fetches the board row FOR UPDATE so concurrent moves
// on the same board serialize instead of clobbering each other's lists.
func lockBoardForUser(tx *gorm.DB, boardID, userID string) (*board.Board, error) {
	var b board.Board
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", boardID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("board")
		}
		return nil, err
	}
	if !b.HasParticipant(userID) {
		return nil, apperror.NewNotFound("board")
	}
	return &b, nil
}

func (s *service) afterMutation(ctx context.Context, boardID string) {
	s.boardSvc.InvalidateBoardCache(ctx, boardID)
	s.eventBus.Publish("board_updated", map[string]interface{}{"boardId": boardID})
}
