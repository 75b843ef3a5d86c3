// Package models contains domain types for the kanban board.
package models

// Issue is the single card entity managed by the board.
// The ID is assigned by the record store and is immutable after creation.
type Issue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Issue status constants. These drive which board column renders a card.
// The set is a convention, not a server-side constraint: unknown values are
// stored as-is and rendered with a fallback label by presentation layers.
const (
	StatusTodo   = "todo"
	StatusDoing  = "doing"
	StatusDone   = "done"
	StatusClosed = "closed"
)

// Statuses lists the known statuses in board-column order.
func Statuses() []string {
	return []string{StatusTodo, StatusDoing, StatusDone, StatusClosed}
}

// KnownStatus reports whether s is one of the four board columns.
func KnownStatus(s string) bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone, StatusClosed:
		return true
	}
	return false
}
