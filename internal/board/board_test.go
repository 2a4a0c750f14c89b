package board

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"taskboard/internal/models"
	"taskboard/internal/storage/sqlite"
)

// testDefaults mirrors the shipped configuration: list 1 is the fallback,
// user 1 the default creator, status/priority 4 the creation defaults.
var testDefaults = Defaults{
	FallbackListID: 1,
	CreatorID:      1,
	StatusID:       4,
	PriorityID:     4,
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "board.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedBoard creates the rows the services assume: the fallback list, the
// default creator, status and priority rows 1..4, and one project.
func seedBoard(t *testing.T, store *sqlite.Store) {
	t.Helper()

	db := store.DB()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	must(db.Create(&models.User{ID: 1, Name: "Admin", Email: "admin@example.com", Department: "Engineering"}).Error)
	must(db.Create(&models.List{ID: 1, Title: "Backlog"}).Error)
	must(db.Create(&models.List{ID: 2, Title: "In Progress"}).Error)

	statuses := []models.Status{
		{ID: 1, Label: "open"},
		{ID: 2, Label: "active"},
		{ID: 3, Label: "review"},
		{ID: 4, Label: "none"},
	}
	for i := range statuses {
		must(db.Create(&statuses[i]).Error)
	}

	priorities := []models.Priority{
		{ID: 1, Label: "urgent"},
		{ID: 2, Label: "high"},
		{ID: 3, Label: "medium"},
		{ID: 4, Label: "low"},
	}
	for i := range priorities {
		must(db.Create(&priorities[i]).Error)
	}

	must(db.Create(&models.Color{ID: 1, Label: "red"}).Error)
	must(db.Create(&models.Project{ID: 1, Name: "Sample Project", ColorID: 1}).Error)
}

func newTestServices(t *testing.T) (*TaskService, *ListService, *sqlite.Store) {
	t.Helper()

	store := newTestStore(t)
	seedBoard(t, store)
	return NewTaskService(store, testDefaults), NewListService(store, testDefaults), store
}

func ref(id int64) Ref {
	return Ref{ID: id, Set: true}
}

func nullRef() Ref {
	return Ref{Set: true, Null: true}
}

func strPtr(s string) *string {
	return &s
}

func countTasks(t *testing.T, store *sqlite.Store) int64 {
	t.Helper()

	var n int64
	if err := store.DB().Model(&models.Task{}).Count(&n).Error; err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	return n
}
