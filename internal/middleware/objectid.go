package middleware

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidateObjectID rejects requests whose :id path parameter is not a
// well-formed 24-hex object id, before any store lookup happens. The
// message is distinct from the not-found one so clients can tell a bad
// id from a missing resource.
func ValidateObjectID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsValidObjectID(c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "ID is not valid."})
			return
		}
		c.Next()
	}
}

// ValidateQueryBoardID rejects requests whose boardId query parameter is
// not a well-formed object id.
func ValidateQueryBoardID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsValidObjectID(c.Query("boardId")) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Board ID is not valid."})
			return
		}
		c.Next()
	}
}
