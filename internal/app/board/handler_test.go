package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matrixersp/kanbanup-api/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	boards map[string]*Board
}

func (f *fakeService) GetAllBoards(ctx context.Context, userID string) ([]*Board, error) {
	var out []*Board
	for _, b := range f.boards {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeService) GetBoardByID(ctx context.Context, id, userID string) (*PopulatedBoard, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, apperror.NewNotFound("board")
	}
	return populate(b, nil), nil
}

func (f *fakeService) CreateBoard(ctx context.Context, userID, title string) (*Board, error) {
	b := &Board{ID: "64a1f77bcf86cd7994390001", Title: title, Lists: []List{}}
	f.boards[b.ID] = b
	return b, nil
}

func (f *fakeService) UpdateBoardTitle(ctx context.Context, id, userID, title string) (*Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, apperror.NewNotFound("board")
	}
	b.Title = title
	return b, nil
}

func (f *fakeService) DeleteBoard(ctx context.Context, id, userID string) error {
	if _, ok := f.boards[id]; !ok {
		return apperror.NewNotFound("board")
	}
	delete(f.boards, id)
	return nil
}

func (f *fakeService) InvalidateBoardCache(ctx context.Context, boardID string) {}

func newTestRouter(svc Service) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc))
	return r
}

func TestGetBoardByID(t *testing.T) {
	svc := &fakeService{boards: map[string]*Board{
		"507f1f77bcf86cd799439011": {ID: "507f1f77bcf86cd799439011", Title: "Board 1", Lists: []List{}},
	}}
	r := newTestRouter(svc)

	t.Run("returns the board", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/boards/507f1f77bcf86cd799439011", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Board 1"`)
	})

	t.Run("malformed id is rejected before the service runs", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/boards/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"ID is not valid."}`, w.Body.String())
	})

	t.Run("well-formed but missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/boards/aaaaaaaaaaaaaaaaaaaaaaaa", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"The board with the given ID was not found."}`, w.Body.String())
	})
}

func TestCreateBoard(t *testing.T) {
	t.Run("creates a board with empty lists", func(t *testing.T) {
		svc := &fakeService{boards: map[string]*Board{}}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"title":"Board 1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Board 1"`)
		assert.Contains(t, w.Body.String(), `"lists":[]`)
	})

	t.Run("missing title yields aggregated validation errors", func(t *testing.T) {
		svc := &fakeService{boards: map[string]*Board{}}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"error":"The title field is required."}]}`, w.Body.String())
		assert.Empty(t, svc.boards, "no board may be persisted on validation failure")
	})

	t.Run("empty title is treated as missing", func(t *testing.T) {
		svc := &fakeService{boards: map[string]*Board{}}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"title":""}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.boards)
	})
}

func TestUpdateBoardTitle(t *testing.T) {
	svc := &fakeService{boards: map[string]*Board{
		"507f1f77bcf86cd799439011": {ID: "507f1f77bcf86cd799439011", Title: "Old"},
	}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/boards/507f1f77bcf86cd799439011", strings.NewReader(`{"title":"New"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"New"`)
}

func TestDeleteBoard(t *testing.T) {
	svc := &fakeService{boards: map[string]*Board{
		"507f1f77bcf86cd799439011": {ID: "507f1f77bcf86cd799439011", Title: "Board 1"},
	}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/boards/507f1f77bcf86cd799439011", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"The board was successfully deleted."}`, w.Body.String())

	// Deleting again reports the board as missing.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/boards/507f1f77bcf86cd799439011", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
