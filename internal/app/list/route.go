package list

import (
	"github.com/matrixersp/kanbanup-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	lists := rg.Group("/lists")
	{
		lists.POST("", handler.CreateList)
		lists.PUT("/:id", middleware.ValidateObjectID(), handler.UpdateListTitle)
		lists.DELETE("/:id", middleware.ValidateObjectID(), handler.DeleteList)
	}
}
