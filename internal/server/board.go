package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleBoardSnapshot returns everything the board view needs in one
// response: lists, tasks and the reference data tasks link to.
func (s *Server) handleBoardSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	lists, err := s.store.ListLists(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	statuses, err := s.store.ListStatuses(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	priorities, err := s.store.ListPriorities(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lists":      lists,
		"tasks":      tasks,
		"projects":   projects,
		"statuses":   statuses,
		"priorities": priorities,
	})
}
