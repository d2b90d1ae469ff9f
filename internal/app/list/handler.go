package list

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateList(c *gin.Context)
	UpdateListTitle(c *gin.Context)
	DeleteList(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create list
// @Description Append a new empty list to a board
// @Tags List
// @Accept json
// @Produce json
// @Success 201 {object} board.List
// @Failure 400 {object} apperror.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/lists [post]
func (h *handler) CreateList(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}

	list, err := h.service.CreateList(c.Request.Context(), req.BoardID, req.Title)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// @Summary Update list title
// @Tags List
// @Accept json
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} board.List
// @Failure 400 {object} apperror.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id} [put]
func (h *handler) UpdateListTitle(c *gin.Context) {
	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}

	list, err := h.service.UpdateListTitle(c.Request.Context(), c.Param("id"), req.BoardID, req.Title)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Delete list
// @Description Remove a list from its board and delete its cards
// @Tags List
// @Accept json
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id} [delete]
func (h *handler) DeleteList(c *gin.Context) {
	var req DeleteListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}

	if err := h.service.DeleteList(c.Request.Context(), c.Param("id"), req.BoardID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The list was successfully deleted."})
}
