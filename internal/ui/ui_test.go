package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	PrintTable([][]string{
		{"#", "PHASE"},
		{"1", "Session"},
		{"2", "Break"},
	}, &buf)

	out := buf.String()

	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "Session")
	assert.Contains(t, out, "Break")
}

func TestColorsKeepText(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	for _, dark := range []bool{true, false} {
		DarkTheme = dark

		assert.Equal(t, "Session", Green("Session"))
		assert.Equal(t, "Break", Cyan("Break"))
		assert.Equal(t, "total", Highlight("total"))
	}

	DarkTheme = false
}
