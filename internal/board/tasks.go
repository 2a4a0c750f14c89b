package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/models"
	"taskboard/internal/storage/sqlite"
)

// Defaults carries the fallback identities the services fall back to when
// a request leaves them unspecified.
type Defaults struct {
	FallbackListID int64
	CreatorID      int64
	StatusID       int64
	PriorityID     int64
}

// TaskService implements create, partial update and reposition for tasks.
type TaskService struct {
	store    *sqlite.Store
	defaults Defaults
}

// NewTaskService wires the task mutations onto the store.
func NewTaskService(store *sqlite.Store, defaults Defaults) *TaskService {
	return &TaskService{store: store, defaults: defaults}
}

// TaskView is the normalized task payload returned by the mutation
// endpoints, with every reference resolved to its id.
type TaskView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ListID      int64   `json:"list_id"`
	ProjectID   *int64  `json:"project_id"`
	Status      *int64  `json:"status"`
	Priority    *int64  `json:"priority"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCompleted bool    `json:"is_completed"`
}

func viewOf(t models.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Name:        t.Name,
		ListID:      t.ListID,
		ProjectID:   t.ProjectID,
		Status:      t.StatusID,
		Priority:    t.PriorityID,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.Deadline,
		IsCompleted: t.IsCompleted,
	}
}

// CreateTaskParams is the decoded create-task payload.
type CreateTaskParams struct {
	Name        string  `json:"name"`
	ListID      Ref     `json:"list_id"`
	Status      Ref     `json:"status"`
	Priority    Ref     `json:"priority"`
	ProjectID   Ref     `json:"project_id"`
	CreatedBy   Ref     `json:"created_by"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// Create inserts a new task. Status and priority fall back to the
// configured defaults; a reference to a missing status, priority or
// project is a client error. The list id is required but its existence is
// left to the foreign key, so a stale list surfaces as a storage error.
func (s *TaskService) Create(ctx context.Context, p CreateTaskParams) (TaskView, error) {
	if strings.TrimSpace(p.Name) == "" {
		return TaskView{}, clientErrorf("task name is required")
	}
	if !p.ListID.Set || p.ListID.Null {
		return TaskView{}, clientErrorf("list id is required")
	}

	statusID := p.Status.Value(s.defaults.StatusID)
	status, err := s.store.GetStatus(ctx, statusID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TaskView{}, clientErrorf("status %d does not exist", statusID)
	}
	if err != nil {
		return TaskView{}, fmt.Errorf("lookup status: %w", err)
	}

	priorityID := p.Priority.Value(s.defaults.PriorityID)
	priority, err := s.store.GetPriority(ctx, priorityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TaskView{}, clientErrorf("priority %d does not exist", priorityID)
	}
	if err != nil {
		return TaskView{}, fmt.Errorf("lookup priority: %w", err)
	}

	var projectID *int64
	if p.ProjectID.Set && !p.ProjectID.Null {
		project, err := s.store.GetProject(ctx, p.ProjectID.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskView{}, clientErrorf("project %d does not exist", p.ProjectID.ID)
		}
		if err != nil {
			return TaskView{}, fmt.Errorf("lookup project: %w", err)
		}
		projectID = &project.ID
	}

	task := models.Task{
		Name:        p.Name,
		ListID:      p.ListID.ID,
		ProjectID:   projectID,
		StatusID:    &status.ID,
		PriorityID:  &priority.ID,
		CreatedByID: p.CreatedBy.Value(s.defaults.CreatorID),
		Description: p.Description,
		StartDate:   normalizeDate(p.StartDate),
		Deadline:    normalizeDate(p.EndDate),
	}
	if err := s.store.CreateTask(ctx, &task); err != nil {
		return TaskView{}, fmt.Errorf("create task: %w", err)
	}
	return viewOf(task), nil
}

// UpdateTaskParams is the decoded update-task payload. Pointer fields
// distinguish "absent" from "present".
type UpdateTaskParams struct {
	TaskID      Ref     `json:"task_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      Ref     `json:"status"`
	Priority    Ref     `json:"priority"`
	ProjectID   Ref     `json:"project_id"`
	IsCompleted *bool   `json:"is_completed"`
}

// Update applies a partial update. Name, description and the completion
// flag merge: absent keys keep the stored value. The dates always replace:
// an absent or empty value clears the field. Status, priority and project
// are validated independently against a draft in memory; nothing persists
// unless every referenced row exists.
func (s *TaskService) Update(ctx context.Context, p UpdateTaskParams) (TaskView, error) {
	if !p.TaskID.Set || p.TaskID.Null {
		return TaskView{}, clientErrorf("task id is required")
	}

	task, err := s.store.GetTask(ctx, p.TaskID.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TaskView{}, notFoundf("task not found")
	}
	if err != nil {
		return TaskView{}, fmt.Errorf("lookup task: %w", err)
	}

	if p.Name != nil {
		task.Name = *p.Name
	}
	if p.Description != nil {
		task.Description = p.Description
	}
	if p.IsCompleted != nil {
		task.IsCompleted = *p.IsCompleted
	}

	task.StartDate = passthroughDate(p.StartDate)
	task.Deadline = passthroughDate(p.EndDate)

	if p.Status.Set {
		if p.Status.Null {
			return TaskView{}, clientErrorf("invalid status ID")
		}
		status, err := s.store.GetStatus(ctx, p.Status.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskView{}, clientErrorf("invalid status ID")
		}
		if err != nil {
			return TaskView{}, fmt.Errorf("lookup status: %w", err)
		}
		task.StatusID = &status.ID
	}

	if p.Priority.Set {
		if p.Priority.Null {
			return TaskView{}, clientErrorf("invalid priority ID")
		}
		priority, err := s.store.GetPriority(ctx, p.Priority.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskView{}, clientErrorf("invalid priority ID")
		}
		if err != nil {
			return TaskView{}, fmt.Errorf("lookup priority: %w", err)
		}
		task.PriorityID = &priority.ID
	}

	if p.ProjectID.Set {
		if p.ProjectID.Null {
			task.ProjectID = nil
		} else {
			project, err := s.store.GetProject(ctx, p.ProjectID.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return TaskView{}, clientErrorf("invalid project ID")
			}
			if err != nil {
				return TaskView{}, fmt.Errorf("lookup project: %w", err)
			}
			task.ProjectID = &project.ID
		}
	}

	if err := s.store.SaveTask(ctx, &task); err != nil {
		return TaskView{}, fmt.Errorf("save task: %w", err)
	}
	return viewOf(task), nil
}

// RepositionParams is the decoded update-task-position payload. Position
// is accepted for compatibility with the drag-and-drop client but ignored:
// only list membership persists.
type RepositionParams struct {
	TaskID   Ref `json:"task_id"`
	ListID   Ref `json:"list_id"`
	Position Ref `json:"position"`
}

// Reposition moves a task to another list.
func (s *TaskService) Reposition(ctx context.Context, p RepositionParams) error {
	if !p.TaskID.Set || p.TaskID.Null {
		return clientErrorf("task id is required")
	}
	if !p.ListID.Set || p.ListID.Null {
		return clientErrorf("list id is required")
	}

	task, err := s.store.GetTask(ctx, p.TaskID.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("task not found")
	}
	if err != nil {
		return fmt.Errorf("lookup task: %w", err)
	}

	list, err := s.store.GetList(ctx, p.ListID.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("list not found")
	}
	if err != nil {
		return fmt.Errorf("lookup list: %w", err)
	}

	task.ListID = list.ID
	if err := s.store.SaveTask(ctx, &task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}
