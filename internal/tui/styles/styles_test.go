package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplySwapsPalette(t *testing.T) {
	t.Cleanup(func() { Apply(false) })

	Apply(true)
	assert.True(t, Current().Dark)
	assert.Equal(t, DarkPalette.Accent, Accent)

	Apply(false)
	assert.False(t, Current().Dark)
	assert.Equal(t, LightPalette.Accent, Accent)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Bibimbap", Truncate("Bibimbap", 8))
	assert.Equal(t, "Bibi…", Truncate("Bibimbap", 5))
	assert.Equal(t, "B", Truncate("Bibimbap", 1))
	assert.Equal(t, "", Truncate("Bibimbap", 0))
	assert.LessOrEqual(t, lipgloss.Width(Truncate("떡볶이 Tteokbokki", 6)), 6)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, 4, lipgloss.Width(Pad("abcdefgh", 4)))
}

func TestRenderListRowWidth(t *testing.T) {
	row := RenderListRow([]RowPart{{Text: "♥"}, {Text: " Bulgogi"}}, true, 30)
	assert.Equal(t, 30, lipgloss.Width(row))
}
