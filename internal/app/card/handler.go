package card

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/apperror"
	"github.com/matrixersp/kanbanup-api/internal/middleware"
	"github.com/matrixersp/kanbanup-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetCardsByBoardID(c *gin.Context)
	GetCardByID(c *gin.Context)
	CreateCard(c *gin.Context)
	UpdateCard(c *gin.Context)
	DeleteCard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get cards for a board
// @Tags Card
// @Produce json
// @Param boardId query string true "Board ID"
// @Success 200 {array} Card
// @Failure 404 {object} map[string]string
// @Router /api/cards [get]
func (h *handler) GetCardsByBoardID(c *gin.Context) {
	cards, err := h.service.GetCardsByBoardID(c.Request.Context(), c.Query("boardId"), middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// @Summary Get card by ID
// @Tags Card
// @Produce json
// @Param id path string true "Card ID"
// @Param boardId query string true "Board ID"
// @Success 200 {object} Card
// @Failure 404 {object} map[string]string
// @Router /api/cards/{id} [get]
func (h *handler) GetCardByID(c *gin.Context) {
	card, err := h.service.GetCardByID(c.Request.Context(), c.Param("id"), c.Query("boardId"), middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Create card
// @Description Create a card and append it to its list
// @Tags Card
// @Accept json
// @Produce json
// @Success 201 {object} Card
// @Failure 400 {object} apperror.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/cards [post]
func (h *handler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}
	if !utils.IsValidObjectID(req.ListID) {
		apperror.Respond(c, apperror.NewMalformedID("List"))
		return
	}

	card, err := h.service.CreateCard(c.Request.Context(), req.BoardID, req.ListID, middleware.UserID(c), req.Title)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// @Summary Update card
// @Description Rename a card ({boardId, title}) or move it between lists
// @Description ({boardId, source, destination})
// @Tags Card
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} Card
// @Success 204
// @Failure 400 {object} apperror.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/cards/{id} [patch]
func (h *handler) UpdateCard(c *gin.Context) {
	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}

	switch {
	case req.Source != nil && req.Destination != nil:
		err := h.service.MoveCard(
			c.Request.Context(),
			c.Param("id"),
			req.BoardID,
			middleware.UserID(c),
			*req.Source,
			*req.Destination,
		)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)

	case req.Title != "":
		card, err := h.service.RenameCard(c.Request.Context(), c.Param("id"), req.BoardID, middleware.UserID(c), req.Title)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, card)

	default:
		apperror.Respond(c, apperror.NewValidation("The title or source/destination fields are required."))
	}
}

// @Summary Delete card
// @Description Delete a card and remove it from its list
// @Tags Card
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/cards/{id} [delete]
func (h *handler) DeleteCard(c *gin.Context) {
	var req DeleteCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}
	if !utils.IsValidObjectID(req.BoardID) {
		apperror.Respond(c, apperror.NewMalformedID("Board"))
		return
	}
	if !utils.IsValidObjectID(req.ListID) {
		apperror.Respond(c, apperror.NewMalformedID("List"))
		return
	}

	err := h.service.DeleteCard(c.Request.Context(), c.Param("id"), req.BoardID, req.ListID, middleware.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The card was successfully deleted."})
}
