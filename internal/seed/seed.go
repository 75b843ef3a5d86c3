// Package seed holds the fixed example dataset the board starts with.
package seed

import "github.com/example/kanban/internal/models"

// NextID is the store counter value after loading the example dataset.
const NextID = 9

// Issues returns the eight example records (ids "1".."8") used to seed a
// fresh store. Callers receive a new slice on every call and may mutate it.
func Issues() []models.Issue {
	return []models.Issue{
		{ID: "1", Title: "Set up project board", Description: "Create the four columns and agree on what each status means.", Status: models.StatusDone},
		{ID: "2", Title: "Write onboarding guide", Description: "Short doc covering how to create, move, and close issues.", Status: models.StatusDoing},
		{ID: "3", Title: "Design card layout", Description: "Title, description preview, and a status badge per card.", Status: models.StatusDoing},
		{ID: "4", Title: "Add drag-and-drop", Description: "Dragging a card to another column updates its status.", Status: models.StatusTodo},
		{ID: "5", Title: "Hook up detail page", Description: "Clicking a card opens a detail view with edit and delete.", Status: models.StatusTodo},
		{ID: "6", Title: "Review error banners", Description: "Failed requests should show the server message inline.", Status: models.StatusTodo},
		{ID: "7", Title: "Prune stale cards", Description: "Close anything untouched for a quarter.", Status: models.StatusClosed},
		{ID: "8", Title: "Demo to the team", Description: "Walk through the full create/move/delete flow.", Status: models.StatusTodo},
	}
}
