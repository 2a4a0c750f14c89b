package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskboard/internal/board"
	"taskboard/internal/storage/sqlite"
)

// Server provides the HTTP handlers for the board backend.
type Server struct {
	engine    *gin.Engine
	store     *sqlite.Store
	tasks     *board.TaskService
	lists     *board.ListService
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, tasks *board.TaskService, lists *board.ListService, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	srv := &Server{
		engine:    router,
		store:     store,
		tasks:     tasks,
		lists:     lists,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires the API and static handlers together. The mutation
// routes are POST-only, mirroring the drag-and-drop client.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/board", s.handleBoardSnapshot)

		api.POST("/create-task", s.handleCreateTask)
		api.POST("/update-task", s.handleUpdateTask)
		api.POST("/update-task-position", s.handleUpdateTaskPosition)

		api.POST("/create-list", s.handleCreateList)
		api.POST("/update-list-title", s.handleUpdateListTitle)
		api.POST("/delete-list", s.handleDeleteList)
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the board error taxonomy onto HTTP status codes and
// emits the uniform error envelope. Unclassified errors are logged and
// answered with 500.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var clientErr *board.ClientError
	var notFound *board.NotFoundError
	switch {
	case errors.As(err, &clientErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	default:
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}

	c.JSON(status, gin.H{"status": "error", "message": err.Error()})
}

// bindError wraps a JSON binding failure as a client error so the uniform
// envelope and 400 mapping apply.
func bindError(err error) error {
	return &board.ClientError{Message: err.Error()}
}
