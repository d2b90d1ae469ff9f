package board

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
	GetBoardByID(c *gin.Context)
	CreateBoard(c *gin.Context)
	UpdateBoardTitle(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get boards
// @Description Get every board the requester participates in
// @Tags Board
// @Produce json
// @Success 200 {array} Board
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.GetAllBoards(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// @Summary Get board by ID
// @Description Get a board with its lists and their cards populated
// @Tags Board
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} PopulatedBoard
// @Failure 404 {object} map[string]string
// @Router /api/boards/{id} [get]
func (h *handler) GetBoardByID(c *gin.Context) {
	board, err := h.service.GetBoardByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Create board
// @Tags Board
// @Accept json
// @Produce json
// @Success 201 {object} Board
// @Failure 400 {object} apperror.ValidationErrors
// @Router /api/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}

	board, err := h.service.CreateBoard(c.Request.Context(), middleware.UserID(c), req.Title)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

// @Summary Update board title
// @Tags Board
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} Board
// @Failure 400 {object} apperror.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/boards/{id} [patch]
func (h *handler) UpdateBoardTitle(c *gin.Context) {
	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}

	board, err := h.service.UpdateBoardTitle(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Title)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Delete board
// @Description Delete a board and all of its cards. Creator only.
// @Tags Board
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	err := h.service.DeleteBoard(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The board was successfully deleted."})
}
