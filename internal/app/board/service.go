package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/providers/redis"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const boardCacheTTL = 5 * time.Minute

// CardFinder resolves a board's card rows. Implemented by the card
// package; declared here to keep the dependency one-way.
type CardFinder interface {
	FindByBoardID(ctx context.Context, boardID string) ([]CardDocument, error)
}

// UserDirectory answers whether a user row exists. Implemented by the
// user service.
type UserDirectory interface {
	UserExists(id string) (bool, error)
}

type Service interface {
	GetAllBoards(ctx context.Context, userID string) ([]*Board, error)
	GetBoardByID(ctx context.Context, id, userID string) (*PopulatedBoard, error)
	CreateBoard(ctx context.Context, userID, title string) (*Board, error)
	UpdateBoardTitle(ctx context.Context, id, userID, title string) (*Board, error)
	DeleteBoard(ctx context.Context, id, userID string) error
	InvalidateBoardCache(ctx context.Context, boardID string)
}

type service struct {
	repo     Repository
	cards    CardFinder
	users    UserDirectory
	dbConn   *gorm.DB
	redisP   *redis.RedisProvider
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(
	repo Repository,
	cards CardFinder,
	users UserDirectory,
	dbConn *gorm.DB,
	redisP *redis.RedisProvider,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		cards:    cards,
		users:    users,
		dbConn:   dbConn,
		redisP:   redisP,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) GetAllBoards(ctx context.Context, userID string) ([]*Board, error) {
	boards, err := s.repo.FindForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	return boards, nil
}

func (s *service) GetBoardByID(ctx context.Context, id, userID string) (*PopulatedBoard, error) {
	board, err := s.loadBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	if !board.HasParticipant(userID) {
		return nil, apperror.NewNotFound("board")
	}

	cards, err := s.cards.FindByBoardID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}
	return populate(board, cards), nil
}

// loadBoard is cache-aside over the raw board row. The participant check
// happens after the fetch so the cache stays per-board, not per-user.
func (s *service) loadBoard(ctx context.Context, id string) (*Board, error) {
	cacheKey := boardCacheKey(id)
	if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var board Board
		if json.Unmarshal([]byte(cached), &board) == nil {
			return &board, nil
		}
	}

	board, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("board")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}

	if data, err := json.Marshal(board); err == nil {
		s.redisP.SetEX(ctx, cacheKey, data, boardCacheTTL)
	}
	return board, nil
}

func populate(board *Board, cards []CardDocument) *PopulatedBoard {
	byID := make(map[string]CardDocument, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	populated := &PopulatedBoard{
		ID:           board.ID,
		Title:        board.Title,
		Lists:        make([]PopulatedList, 0, len(board.Lists)),
		Participants: board.Participants,
		Creator:      board.Creator,
		CreatedAt:    board.CreatedAt,
		UpdatedAt:    board.UpdatedAt,
	}
	for _, l := range board.Lists {
		pl := PopulatedList{ID: l.ID, Title: l.Title, Cards: make([]CardDocument, 0, len(l.Cards))}
		for _, cardID := range l.Cards {
			if doc, ok := byID[cardID]; ok {
				pl.Cards = append(pl.Cards, doc)
			}
		}
		populated.Lists = append(populated.Lists, pl)
	}
	return populated
}

func (s *service) CreateBoard(ctx context.Context, userID, title string) (*Board, error) {
	exists, err := s.users.UserExists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperror.NewNotFound("user")
	}

	board := &Board{
		ID:           utils.NewObjectID(),
		Title:        title,
		Lists:        []List{},
		Participants: []string{userID},
		Creator:      userID,
	}
	if err := s.repo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.eventBus.Publish("board_created", map[string]interface{}{
		"boardId": board.ID,
		"title":   board.Title,
	})
	return board, nil
}

func (s *service) UpdateBoardTitle(ctx context.Context, id, userID, title string) (*Board, error) {
	board, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("board")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	if !board.HasParticipant(userID) {
		return nil, apperror.NewNotFound("board")
	}

	board.Title = title
	if err := s.repo.Save(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	s.InvalidateBoardCache(ctx, id)
	s.eventBus.Publish("board_updated", map[string]interface{}{
		"boardId": board.ID,
		"title":   board.Title,
	})
	return board, nil
}

// DeleteBoard removes the board row and every card row that belongs to
// it in one transaction, so a deleted board never leaves orphan cards.
func (s *service) DeleteBoard(ctx context.Context, id, userID string) error {
	err := s.dbConn.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND creator = ?", id, userID).Delete(&Board{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFound("board")
		}
		return tx.Exec("DELETE FROM cards WHERE board_id = ?", id).Error
	})
	if err != nil {
		return err
	}

	s.InvalidateBoardCache(ctx, id)
	s.eventBus.Publish("board_deleted", map[string]interface{}{"boardId": id})
	return nil
}

func (s *service) InvalidateBoardCache(ctx context.Context, boardID string) {
	if err := s.redisP.Del(ctx, boardCacheKey(boardID)).Err(); err != nil {
		s.logger.Warnw("Failed to invalidate board cache", "board_id", boardID, "error", err)
	}
}

func boardCacheKey(id string) string {
	return fmt.Sprintf("boards:board:%s", id)
}
