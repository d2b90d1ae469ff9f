package card

import (
	"github.com/matrixersp/kanbanup-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	cards := rg.Group("/cards")
	{
		cards.GET("", middleware.ValidateQueryBoardID(), handler.GetCardsByBoardID)
		cards.POST("", handler.CreateCard)
		cards.GET("/:id", middleware.ValidateObjectID(), middleware.ValidateQueryBoardID(), handler.GetCardByID)
		cards.PATCH("/:id", middleware.ValidateObjectID(), handler.UpdateCard)
		cards.DELETE("/:id", middleware.ValidateObjectID(), handler.DeleteCard)
	}
}
