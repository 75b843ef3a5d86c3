// Package tui renders the kanban board as an interactive terminal UI.
// Moving a card between columns with the keyboard patches its status, the
// terminal counterpart of dragging it in the web UI. All state flows
// through the client cache, so every mutation re-syncs with the server.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/kanban/internal/client"
	"github.com/example/kanban/internal/models"
)

type issuesLoadedMsg []models.Issue

type opErrMsg struct{ err error }

type opDoneMsg struct{}

// inputPhase tracks the two-step inline creation flow.
type inputPhase int

const (
	inputNone inputPhase = iota
	inputTitle
	inputDescription
)

// Board is the Bubble Tea model for the kanban board.
type Board struct {
	cache   *client.Cache
	columns []string

	issues [][]models.Issue // one slice per column, unknown statuses fold into column 0
	col    int
	row    []int

	phase      inputPhase
	ti         textinput.Model
	draftTitle string
	errText    string
	busy       bool
	width      int
}

// NewBoard creates a board over the given cache.
func NewBoard(cache *client.Cache) Board {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	columns := models.Statuses()
	return Board{
		cache:   cache,
		columns: columns,
		issues:  make([][]models.Issue, len(columns)),
		row:     make([]int, len(columns)),
		ti:      ti,
	}
}

// Run starts the program in the alternate screen.
func Run(cache *client.Cache) error {
	_, err := tea.NewProgram(NewBoard(cache), tea.WithAltScreen()).Run()
	return err
}

func (b Board) Init() tea.Cmd {
	return b.refreshCmd()
}

// refreshCmd re-fetches the full collection through the cache.
func (b Board) refreshCmd() tea.Cmd {
	cache := b.cache
	return func() tea.Msg {
		if err := cache.Refresh(context.Background()); err != nil {
			return opErrMsg{err}
		}
		return issuesLoadedMsg(cache.Issues())
	}
}

func (b Board) moveCmd(id, status string) tea.Cmd {
	cache := b.cache
	return func() tea.Msg {
		if _, err := cache.PatchIssue(context.Background(), id, client.IssuePatch{Status: &status}); err != nil {
			return opErrMsg{err}
		}
		return opDoneMsg{}
	}
}

func (b Board) deleteCmd(id string) tea.Cmd {
	cache := b.cache
	return func() tea.Msg {
		if err := cache.DeleteIssue(context.Background(), id); err != nil {
			return opErrMsg{err}
		}
		return opDoneMsg{}
	}
}

func (b Board) createCmd(title, description, status string) tea.Cmd {
	cache := b.cache
	return func() tea.Msg {
		fields := client.IssueFields{Title: title, Description: description, Status: status}
		if _, err := cache.CreateIssue(context.Background(), fields); err != nil {
			return opErrMsg{err}
		}
		return opDoneMsg{}
	}
}

func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case issuesLoadedMsg:
		b.setIssues(msg)
		b.busy = false
		return b, nil

	case opDoneMsg:
		// Mutations already re-synced the cache; just re-render from it.
		b.setIssues(b.cache.Issues())
		b.busy = false
		return b, nil

	case opErrMsg:
		b.errText = msg.err.Error()
		b.busy = false
		return b, nil

	case tea.KeyMsg:
		if b.phase != inputNone {
			return b.updateInput(msg)
		}
		return b.updateBoard(msg)
	}
	return b, nil
}

// updateInput handles keys during the two-step create flow.
func (b Board) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(b.ti.Value())
		switch b.phase {
		case inputTitle:
			if value == "" {
				b.errText = "title cannot be empty"
				return b, nil
			}
			b.draftTitle = value
			b.phase = inputDescription
			b.ti.SetValue("")
			b.ti.Placeholder = "Description..."
			return b, nil
		case inputDescription:
			title := b.draftTitle
			b.phase = inputNone
			b.draftTitle = ""
			b.ti.SetValue("")
			b.ti.Blur()
			b.busy = true
			return b, b.createCmd(title, value, b.columns[b.col])
		}
	case "esc":
		b.phase = inputNone
		b.draftTitle = ""
		b.ti.SetValue("")
		b.ti.Blur()
		return b, nil
	}

	var cmd tea.Cmd
	b.ti, cmd = b.ti.Update(msg)
	return b, cmd
}

// updateBoard handles navigation and card operations.
func (b Board) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit

	case "left", "h":
		if b.col > 0 {
			b.col--
		}
	case "right", "l":
		if b.col < len(b.columns)-1 {
			b.col++
		}
	case "up", "k":
		if b.row[b.col] > 0 {
			b.row[b.col]--
		}
	case "down", "j":
		if b.row[b.col] < len(b.issues[b.col])-1 {
			b.row[b.col]++
		}

	case "H", "shift+left":
		if issue, ok := b.selected(); ok && b.col > 0 && !b.busy {
			b.busy = true
			return b, b.moveCmd(issue.ID, b.columns[b.col-1])
		}
	case "L", "shift+right":
		if issue, ok := b.selected(); ok && b.col < len(b.columns)-1 && !b.busy {
			b.busy = true
			return b, b.moveCmd(issue.ID, b.columns[b.col+1])
		}

	case "d", "delete":
		if issue, ok := b.selected(); ok && !b.busy {
			b.busy = true
			return b, b.deleteCmd(issue.ID)
		}

	case "a":
		b.phase = inputTitle
		b.errText = ""
		b.ti.Placeholder = fmt.Sprintf("New %s card title...", b.columns[b.col])
		b.ti.Focus()
		return b, textinput.Blink

	case "r":
		if !b.busy {
			b.busy = true
			return b, b.refreshCmd()
		}
	}
	return b, nil
}

// selected returns the issue under the cursor.
func (b Board) selected() (models.Issue, bool) {
	col := b.issues[b.col]
	if len(col) == 0 || b.row[b.col] >= len(col) {
		return models.Issue{}, false
	}
	return col[b.row[b.col]], true
}

// setIssues distributes the flat collection into columns. Cards with a
// status outside the known set land in the first column with their raw
// status shown on the card.
func (b *Board) setIssues(issues []models.Issue) {
	b.issues = make([][]models.Issue, len(b.columns))
	for _, issue := range issues {
		idx := 0
		for i, status := range b.columns {
			if issue.Status == status {
				idx = i
				break
			}
		}
		b.issues[idx] = append(b.issues[idx], issue)
	}
	for i := range b.row {
		if b.row[i] >= len(b.issues[i]) {
			b.row[i] = max(0, len(b.issues[i])-1)
		}
	}
	b.errText = ""
}
