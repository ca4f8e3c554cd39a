package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("forgeui • %s", m.heading()))
	footer := helpStyle.Render(fmt.Sprintf("tab/shift+tab: framework • ↑/↓ pgup/pgdn: scroll • q: quit  %3.0f%%", m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.tabBar(), m.viewport.View(), footer)
}

func (m Model) heading() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Preview"
}

func (m Model) tabBar() string {
	if len(m.tabs) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := tab.Title
		if i == m.active && tab.Name != "" {
			label = fmt.Sprintf("%s · %s", tab.Title, tab.Name)
		}
		if i == m.active {
			rendered = append(rendered, activeTabStyle.Render(label))
			continue
		}
		rendered = append(rendered, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
