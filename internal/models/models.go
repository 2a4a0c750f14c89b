package models

import "time"

// User is a registered board member. Tasks keep a reference to the user
// that created them; users are never deleted through the API.
type User struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Department string    `json:"department" gorm:"size:50"`
	CreatedAt  time.Time `json:"created_at"`
}

// Color is a palette entry referenced by projects.
type Color struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Label string `json:"color" gorm:"column:color;size:30;not null"`
}

// Project groups tasks under a name and always carries a color.
type Project struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:50;not null"`
	ColorID int64  `json:"color_id" gorm:"not null"`

	Color *Color `json:"color,omitempty" gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
}

// Priority is a label row referenced by tasks.
type Priority struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Label string `json:"priority" gorm:"column:priority;size:10"`
}

// Status is a label row referenced by tasks. It is not a workflow state
// machine; no transitions are enforced.
type Status struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Label string `json:"status" gorm:"column:status;size:10"`
}

// List is a board column. Titles are capped at 25 characters by the
// coercion layer, which truncates rather than rejects.
type List struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"size:25;not null"`
}

// Task is a single card. It always belongs to a list; project, status and
// priority are optional references. Start date and deadline are stored as
// "YYYY-MM-DD" strings and are independent of each other.
type Task struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ListID      int64     `json:"list_id" gorm:"not null;index"`
	ProjectID   *int64    `json:"project_id"`
	StatusID    *int64    `json:"status"`
	PriorityID  *int64    `json:"priority"`
	CreatedByID int64     `json:"created_by" gorm:"not null"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	IsCompleted bool      `json:"is_completed" gorm:"not null;default:false"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	StartDate   *string   `json:"start_date" gorm:"size:10"`
	Deadline    *string   `json:"end_date" gorm:"size:10"`

	List     *List     `json:"-" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Project  *Project  `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Status   *Status   `json:"-" gorm:"foreignKey:StatusID;constraint:OnDelete:CASCADE"`
	Priority *Priority `json:"-" gorm:"foreignKey:PriorityID;constraint:OnDelete:CASCADE"`
	Creator  *User     `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
}
