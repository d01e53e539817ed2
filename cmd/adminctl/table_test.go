package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"#", "NAME", "ACTIVE"},
		[][]string{
			{"0", "Home & Garden", "sim"},
			{"1", "Pets", "não"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], strings.Repeat("─", len("Home & Garden")))
	assert.Equal(t, "0  Home & Garden  sim", lines[2])
	assert.Equal(t, "1  Pets           não", lines[3])
}

func TestRenderTable_StyledCellsKeepAlignment(t *testing.T) {
	styled := styleInactive.Render("não")
	out := renderTable([]string{"ACTIVE", "NAME"}, [][]string{{styled, "Pets"}, {"sim", "Moving"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3])-2)
	assert.True(t, strings.HasSuffix(lines[2], "Pets"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, renderTable(nil, [][]string{{"x"}}))
}
