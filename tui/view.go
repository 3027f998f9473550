package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gofish-bot/appstore/models"
	"github.com/gofish-bot/appstore/printer"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("App Store"))
	sb.WriteString("\n\n")

	if m.detail != nil {
		sb.WriteString(m.detailView())
		sb.WriteString("\n")
		sb.WriteString(statusBarStyle.Render("o:open url  esc:back"))
		return sb.String()
	}

	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")
	for _, kind := range models.FacetKinds {
		sb.WriteString(m.facetLine(kind))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch {
	case m.loading && len(m.view.Records()) == 0:
		sb.WriteString(m.spinner.View() + " Loading catalog...")
		sb.WriteString("\n")
	case m.err != nil:
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.listView())

	status := m.status
	if m.loading {
		status = m.spinner.View() + " Reloading..."
	}
	if status == "" {
		status = fmt.Sprintf("%d of %d apps", len(m.view.Visible()), len(m.view.Records()))
	}
	sb.WriteString("\n")
	sb.WriteString(statusBarStyle.Render(status + "  |  j/k:move  enter:details  /:search  p/g/t:facet  h/l:pick  space:toggle  c:clear  r:reload  q:quit"))
	return sb.String()
}

func (m Model) facetLine(kind models.FacetKind) string {
	label := fmt.Sprintf("%-9s", kind.String()+":")
	if kind == m.facetKind {
		label = selectedStyle.Render(label)
	} else {
		label = mutedStyle.Render(label)
	}

	parts := []string{label}
	for i, value := range m.view.Facets(kind) {
		style := facetOffStyle
		if m.view.IsSelected(kind, value) {
			style = facetOnStyle
		}
		if kind == m.facetKind && i == m.facetCursor[kind] {
			style = style.Copy().Inherit(facetCursorStyle)
		}
		parts = append(parts, style.Render(value))
	}
	return strings.Join(parts, " ")
}

// listHeight is the number of rows the app list may take.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) listView() string {
	visible := m.view.Visible()
	if len(visible) == 0 {
		if m.loading {
			return ""
		}
		return mutedStyle.Render("No apps match.") + "\n"
	}

	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(visible) {
		end = len(visible)
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		app := visible[i]
		line := fmt.Sprintf("%-32s %s", app.Name, mutedStyle.Render(strings.Join(nonBlank(app.Platform, app.Genre, app.Type), " · ")))
		if i == m.cursor {
			line = selectedStyle.Render("> ") + selectedStyle.Render(app.Name) + strings.TrimPrefix(line, app.Name)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) detailView() string {
	var sb strings.Builder
	sb.WriteString(selectedStyle.Render(m.detail.app.Name))
	sb.WriteString("\n")
	for _, f := range printer.DetailFields(m.detail.app) {
		sb.WriteString(labelStyle.Render(f.Label+":") + " " + f.Value + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.detail.text)
	sb.WriteString("\n")
	return sb.String()
}

func nonBlank(values ...string) []string {
	out := []string{}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Run starts the browser on the terminal.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
