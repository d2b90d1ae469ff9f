package board

import (
	"github.com/matrixersp/kanbanup-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards")
	{
		boards.GET("", handler.GetAllBoards)
		boards.POST("", handler.CreateBoard)
		boards.GET("/:id", middleware.ValidateObjectID(), handler.GetBoardByID)
		boards.PATCH("/:id", middleware.ValidateObjectID(), handler.UpdateBoardTitle)
		boards.DELETE("/:id", middleware.ValidateObjectID(), handler.DeleteBoard)
	}
}
