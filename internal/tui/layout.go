package tui

// Vertical layout
const (
	// Title bar plus its bottom rule
	HeaderHeight = 2

	// Status and help hints
	FooterHeight = 1

	ChromeHeight = HeaderHeight + FooterHeight

	// Search box (with border) and the result count line
	ToolbarHeight = 4

	// Dashboard counters on My Recipes
	StatsHeight = 3

	// Horizontal padding around page content
	PagePadding = 1
)

// contentSize is the area left for a page below the header
func (m Model) contentSize() (width, height int) {
	width = m.Width - 2*PagePadding
	height = m.Height - ChromeHeight
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	width, height := m.contentSize()
	m.Omnibar.SetSize(m.Width, m.Height)
	m.Detail.SetSize(width, height)
	m.Form.SetSize(width, height)

	searchWidth := width - 30
	if searchWidth > 60 {
		searchWidth = 60
	}
	for _, l := range []*listing{m.Home, m.Mine} {
		l.Search.SetWidth(searchWidth)
	}

	m.Home.Grid.SetSize(width, height-ToolbarHeight)
	m.Mine.Grid.SetSize(width, height-ToolbarHeight-StatsHeight)
}
