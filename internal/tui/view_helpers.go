package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pageWidth   = 56
	keyMaxWidth = 60
	ellipsis    = "…"
)

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// layout stacks the title, body and key hints between two dividers.
func layout(title, body, hints string) string {
	rule := dividerStyle.Render(strings.Repeat("─", pageWidth))
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	footer := "ctrl+c quit"
	if hints = strings.TrimSpace(hints); hints != "" {
		footer = hints + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		rule,
		"",
		bodyStyle.Render(body),
		"",
		rule,
		helpStyle.Render(footer),
	)
}

func deref(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// truncate cuts s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return string(r[:width-1]) + ellipsis
}
