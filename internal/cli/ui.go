package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// theme holds every style the commands print with. Colors are ANSI 256
// codes so output degrades cleanly on limited terminals.
var theme = struct {
	title, label, value, muted, ok, warn, header, cell, border lipgloss.Style
}{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
	label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
	value:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	header: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1),
	cell:   lipgloss.NewStyle().Padding(0, 1),
	border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, theme.title.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, theme.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// printWarning reports a graph property worth a look, such as a vertex
// with several owners.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, theme.warn.Render("!"), theme.warn.Render(fmt.Sprintf(format, args...)))
}

// printFile lists one written artifact.
func printFile(w io.Writer, name string) {
	fmt.Fprintln(w, " ", theme.muted.Render("→"), theme.value.Render(name))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, theme.label.Render(key), theme.value.Render(value))
}

// printStats summarizes graph size under a title.
func printStats(w io.Writer, vertices, ownerships, references int) {
	counts := []string{
		fmt.Sprintf("%d declarations", vertices),
		fmt.Sprintf("%d ownerships", ownerships),
		fmt.Sprintf("%d references", references),
	}
	fmt.Fprintln(w, "  "+theme.muted.Render(strings.Join(counts, " · ")))
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.header
			}
			return theme.cell
		}).
		String()
}
