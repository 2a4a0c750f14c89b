package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/board"
)

// handleCreateTask creates a task from a loosely typed client payload.
func (s *Server) handleCreateTask(c *gin.Context) {
	var params board.CreateTaskParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), params)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "task": task})
}

// handleUpdateTask applies a partial update to an existing task.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var params board.UpdateTaskParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), params)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "task": task})
}

// handleUpdateTaskPosition moves a task to another list after a drag.
func (s *Server) handleUpdateTaskPosition(c *gin.Context) {
	var params board.RepositionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.respondError(c, bindError(err))
		return
	}

	if err := s.tasks.Reposition(c.Request.Context(), params); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Task position updated successfully"})
}
