package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/status"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	visitingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	visitedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	activeLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
)

// View renders the current position.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	pos := m.cursor.Position()
	v := m.Current()

	// Header.
	title := "pathtrace"
	if m.cfg.Title != "" {
		title += " · " + m.cfg.Title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("step %d/%d · %s · %s",
		pos.Index, pos.Len, pos.State, m.interval)))
	b.WriteString("\n\n")

	if m.proj == nil {
		m.renderFooter(&b)

		return b.String()
	}

	b.WriteString(sectionStyle.Render("Nodes"))
	b.WriteString("\n")
	b.WriteString(m.renderNodes(v))
	b.WriteString("\n")
	if e := v.HighlightedEdge; e != nil {
		b.WriteString(fmt.Sprintf("edge %s: %s → %s\n", edgeName(e), m.snap.Label(e.From), m.snap.Label(e.To)))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Distances"))
	b.WriteString("\n")
	b.WriteString(m.renderDistances(v))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Result"))
	b.WriteString("\n")
	b.WriteString(m.renderResult(v.Result))
	b.WriteString("\n\n")

	if v.Description != "" {
		b.WriteString(v.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(sectionStyle.Render("Pseudocode"))
	b.WriteString("\n")
	b.WriteString(renderPseudocode(v.Stage))
	b.WriteString("\n")

	m.renderFooter(&b)

	return b.String()
}

// renderFooter writes the error or notice line and the key help.
func (m Model) renderFooter(b *strings.Builder) {
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(dimStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
}

func (m Model) renderNodes(v status.View) string {
	parts := make([]string, 0, m.snap.Len())
	for _, n := range m.snap.Nodes() {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		parts = append(parts, nodeStyle(v.Status(n.ID)).Render(label))
	}

	return strings.Join(parts, "  ")
}

func nodeStyle(s status.NodeStatus) lipgloss.Style {
	switch s {
	case status.Visiting:
		return visitingStyle
	case status.Visited:
		return visitedStyle
	case status.OnPath:
		return pathStyle
	default:
		return dimStyle
	}
}

func edgeName(e *status.EdgeRef) string {
	if e.EdgeID == "" {
		return "?"
	}

	return e.EdgeID
}

func (m Model) renderDistances(v status.View) string {
	if v.Distances == nil {
		return dimStyle.Render("(not started)") + "\n"
	}

	var b strings.Builder
	width := 0
	for _, id := range v.Distances.IDs() {
		width = max(width, lipgloss.Width(m.snap.Label(id)))
	}
	for i := range v.Distances.Len() {
		id, d := v.Distances.At(i)
		label := m.snap.Label(id)
		pad := strings.Repeat(" ", width-lipgloss.Width(label))
		fmt.Fprintf(&b, "  %s%s  %s\n", label, pad, dijkstra.FormatDistance(d))
	}

	return b.String()
}

func (m Model) renderResult(r status.Result) string {
	switch r.Kind {
	case status.ResultPath:
		labels := make([]string, len(r.Path))
		for i, id := range r.Path {
			labels[i] = m.snap.Label(id)
		}

		return pathStyle.Render(fmt.Sprintf("%s (total=%s)",
			strings.Join(labels, " → "), dijkstra.FormatDistance(r.Total)))
	case status.ResultNoPath:
		return errorStyle.Render("no path")
	case status.ResultDistances:
		return pathStyle.Render("all distances final")
	case status.ResultInProgress:
		return "in progress"
	default:
		return dimStyle.Render("not started")
	}
}

func renderPseudocode(active status.Stage) string {
	var b strings.Builder
	for i, line := range status.PseudocodeLines() {
		stage := status.Stage(i + 1)
		if stage == active {
			b.WriteString(activeLineStyle.Render(fmt.Sprintf("▶ %d. %s", stage, line)))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %d. %s", stage, line)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
