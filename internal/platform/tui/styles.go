package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Tile cell dimensions in characters.
const (
	tileWidth  = 7
	tileHeight = 3
)

var (
	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("240"))

	// Tile backgrounds roughly follow the classic palette: warm colors
	// for low values, hot colors for high ones.
	tileColors = map[int]lipgloss.Color{
		2:    lipgloss.Color("252"),
		4:    lipgloss.Color("230"),
		8:    lipgloss.Color("215"),
		16:   lipgloss.Color("209"),
		32:   lipgloss.Color("203"),
		64:   lipgloss.Color("196"),
		128:  lipgloss.Color("221"),
		256:  lipgloss.Color("220"),
		512:  lipgloss.Color("214"),
		1024: lipgloss.Color("208"),
		2048: lipgloss.Color("202"),
	}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	overlayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// renderTile renders one board cell.
func renderTile(value int) string {
	if value == 0 {
		return emptyTileStyle.Render("·")
	}

	bg, ok := tileColors[value]
	if !ok {
		// Beyond 2048 everything renders on the hottest color.
		bg = lipgloss.Color("201")
	}

	fg := lipgloss.Color("235")
	if value >= 8 {
		fg = lipgloss.Color("255")
	}

	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(fg).
		Bold(true).
		Render(strconv.Itoa(value))
}
