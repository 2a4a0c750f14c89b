package board

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/models"
	"taskboard/internal/storage/sqlite"
)

// ListService implements create, rename and delete for board lists.
type ListService struct {
	store    *sqlite.Store
	defaults Defaults
}

// NewListService wires the list mutations onto the store.
func NewListService(store *sqlite.Store, defaults Defaults) *ListService {
	return &ListService{store: store, defaults: defaults}
}

// Create inserts a new list, truncating the title to MaxListTitle.
func (s *ListService) Create(ctx context.Context, title string) (models.List, error) {
	list := models.List{Title: truncateTitle(title)}
	if err := s.store.CreateList(ctx, &list); err != nil {
		return models.List{}, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

// RenameParams is the decoded update-list-title payload.
type RenameParams struct {
	ListID Ref    `json:"list_id"`
	Title  string `json:"title"`
}

// Rename retitles an existing list, applying the same truncation rule.
func (s *ListService) Rename(ctx context.Context, p RenameParams) (models.List, error) {
	if !p.ListID.Set || p.ListID.Null {
		return models.List{}, clientErrorf("list id is required")
	}

	list, err := s.store.GetList(ctx, p.ListID.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.List{}, notFoundf("list not found")
	}
	if err != nil {
		return models.List{}, fmt.Errorf("lookup list: %w", err)
	}

	list.Title = truncateTitle(p.Title)
	if err := s.store.SaveList(ctx, &list); err != nil {
		return models.List{}, fmt.Errorf("save list: %w", err)
	}
	return list, nil
}

// DeleteParams is the decoded delete-list payload.
type DeleteParams struct {
	ListID      Ref  `json:"list_id"`
	DeleteTasks bool `json:"delete_tasks"`
}

// Delete removes a list. With DeleteTasks set its tasks are deleted too;
// otherwise they move to the fallback list first, so no task is ever left
// referencing the removed list.
func (s *ListService) Delete(ctx context.Context, p DeleteParams) error {
	if !p.ListID.Set || p.ListID.Null {
		return clientErrorf("list id is required")
	}

	list, err := s.store.GetList(ctx, p.ListID.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("list not found")
	}
	if err != nil {
		return fmt.Errorf("lookup list: %w", err)
	}

	if p.DeleteTasks {
		if err := s.store.DeleteListCascade(ctx, list.ID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	}
	if err := s.store.DeleteListReassign(ctx, list.ID, s.defaults.FallbackListID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
