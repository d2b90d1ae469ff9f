package user

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/apperror"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterUser(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Register a user
// @Description Create a user and open a session for it
// @Tags User
// @Accept json
// @Produce json
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} apperror.ValidationErrors
// @Router /api/users [post]
func (h *handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBinding(err))
		return
	}

	user, sessionKey, err := h.service.RegisterUser(req.Name)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{User: user, SessionKey: sessionKey})
}
