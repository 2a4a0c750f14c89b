package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/board"
)

type createListRequest struct {
	Title string `json:"title"`
}

// handleCreateList inserts a new list and echoes the stored title, which
// may have been truncated.
func (s *Server) handleCreateList(c *gin.Context) {
	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	list, err := s.lists.Create(c.Request.Context(), req.Title)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": list.ID, "title": list.Title})
}

// handleUpdateListTitle renames an existing list.
func (s *Server) handleUpdateListTitle(c *gin.Context) {
	var params board.RenameParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	if _, err := s.lists.Rename(c.Request.Context(), params); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleDeleteList removes a list, cascading or reassigning its tasks.
func (s *Server) handleDeleteList(c *gin.Context) {
	var params board.DeleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	if err := s.lists.Delete(c.Request.Context(), params); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "List and tasks processed successfully"})
}
