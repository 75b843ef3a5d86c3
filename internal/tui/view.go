package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/kanban/internal/models"
)

const cardWidth = 24

func (b Board) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("kanban"))
	if b.busy {
		sb.WriteString(helpStyle.Render("  syncing..."))
	}
	sb.WriteString("\n\n")

	cols := make([]string, len(b.columns))
	for i, status := range b.columns {
		cols[i] = b.renderColumn(i, status)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	sb.WriteString("\n")

	if b.phase != inputNone {
		label := "Title"
		if b.phase == inputDescription {
			label = "Description"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", label, b.ti.View()))
	}
	if b.errText != "" {
		sb.WriteString(errStyle.Render(b.errText))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("←/→ column  ↑/↓ card  H/L move card  a add  d delete  r refresh  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (b Board) renderColumn(idx int, status string) string {
	header := statusStyle(status).Bold(true).Render(
		fmt.Sprintf("%s (%d)", strings.ToUpper(status), len(b.issues[idx])))

	lines := []string{header, ""}
	for row, issue := range b.issues[idx] {
		lines = append(lines, b.renderCard(issue, idx == b.col && row == b.row[idx]))
	}
	if len(b.issues[idx]) == 0 {
		lines = append(lines, helpStyle.Render("(empty)"))
	}

	style := columnStyle
	if idx == b.col {
		style = focusedColumnStyle
	}
	return style.Width(cardWidth + 2).Render(strings.Join(lines, "\n"))
}

func (b Board) renderCard(issue models.Issue, selected bool) string {
	line := fmt.Sprintf("#%s %s", issue.ID, truncate(issue.Title, cardWidth-len(issue.ID)-2))
	if !models.KnownStatus(issue.Status) {
		line += " " + unknownStyle.Render("["+issue.Status+"]")
	}
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func truncate(s string, n int) string {
	if n < 1 {
		n = 1
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
