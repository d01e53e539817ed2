package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleActive   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
)

const colGap = 2

// renderTable alinha as colunas pela largura visível (lipgloss.Width ignora sequências ANSI)
// e separa o cabeçalho com uma linha.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(...string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < cols-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, styleHeader.Render)

	separator := make([]string, cols)
	for i, w := range widths {
		separator[i] = strings.Repeat("─", w)
	}
	writeRow(separator, styleDim.Render)

	plain := func(s ...string) string { return strings.Join(s, "") }
	for _, row := range rows {
		writeRow(row, plain)
	}
	return b.String()
}
