package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskboard/internal/models"
)

// Store wraps the GORM connection and exposes the persistence helpers the
// mutation services build on.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open initializes the SQLite store and migrates the schema.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=ON", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Color{},
		&models.Project{},
		&models.Priority{},
		&models.Status{},
		&models.List{},
		&models.Task{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the raw GORM handle for callers that need direct queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// GetTask fetches a task by id. A missing row surfaces as
// gorm.ErrRecordNotFound.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var t models.Task
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// CreateTask inserts the task and backfills its generated id.
func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	return s.db.WithContext(ctx).Create(t).Error
}

// SaveTask writes every column of the task, clearing fields that were set
// to nil on the draft.
func (s *Store) SaveTask(ctx context.Context, t *models.Task) error {
	return s.db.WithContext(ctx).Save(t).Error
}

// GetList fetches a list by id.
func (s *Store) GetList(ctx context.Context, id int64) (models.List, error) {
	var l models.List
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return models.List{}, err
	}
	return l, nil
}

// CreateList inserts the list and backfills its generated id.
func (s *Store) CreateList(ctx context.Context, l *models.List) error {
	return s.db.WithContext(ctx).Create(l).Error
}

// SaveList writes the list row.
func (s *Store) SaveList(ctx context.Context, l *models.List) error {
	return s.db.WithContext(ctx).Save(l).Error
}

// DeleteListCascade removes the list together with every task it owns.
func (s *Store) DeleteListCascade(ctx context.Context, listID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", listID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if err := tx.Delete(&models.List{}, listID).Error; err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
}

// DeleteListReassign moves the list's tasks to the fallback list before
// removing the list row. The fallback list must exist; the foreign key
// constraint fails the transaction otherwise.
func (s *Store) DeleteListReassign(ctx context.Context, listID, fallbackID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("list_id = ?", listID).Update("list_id", fallbackID).Error; err != nil {
			return fmt.Errorf("reassign tasks: %w", err)
		}
		if err := tx.Delete(&models.List{}, listID).Error; err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
}

// GetStatus fetches a status row by id.
func (s *Store) GetStatus(ctx context.Context, id int64) (models.Status, error) {
	var st models.Status
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return models.Status{}, err
	}
	return st, nil
}

// GetPriority fetches a priority row by id.
func (s *Store) GetPriority(ctx context.Context, id int64) (models.Priority, error) {
	var p models.Priority
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Priority{}, err
	}
	return p, nil
}

// GetProject fetches a project row by id.
func (s *Store) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetUser fetches a user row by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ListLists returns every list ordered by id.
func (s *Store) ListLists(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if err := s.db.WithContext(ctx).Order("id").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// ListTasks returns every task ordered by id.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// TasksByList returns the tasks owned by one list.
func (s *Store) TasksByList(ctx context.Context, listID int64) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Where("list_id = ?", listID).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("tasks by list: %w", err)
	}
	return tasks, nil
}

// ListProjects returns every project with its color preloaded.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Preload("Color").Order("id").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ListStatuses returns every status row ordered by id.
func (s *Store) ListStatuses(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	if err := s.db.WithContext(ctx).Order("id").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}

// ListPriorities returns every priority row ordered by id.
func (s *Store) ListPriorities(ctx context.Context) ([]models.Priority, error) {
	var priorities []models.Priority
	if err := s.db.WithContext(ctx).Order("id").Find(&priorities).Error; err != nil {
		return nil, fmt.Errorf("list priorities: %w", err)
	}
	return priorities, nil
}
