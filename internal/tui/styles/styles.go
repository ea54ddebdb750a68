package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/freshbites/internal/domain"
)

// Palette is one color scheme. Light is active until the theme store loads.
type Palette struct {
	Dark       bool
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Surface    lipgloss.Color
	SurfaceAlt lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Heart      lipgloss.Color
	OnAccent   lipgloss.Color
}

var (
	LightPalette = Palette{
		Accent:     lipgloss.Color("#059669"),
		Text:       lipgloss.Color("#0F172A"),
		Muted:      lipgloss.Color("#475569"),
		Subtle:     lipgloss.Color("#94A3B8"),
		Surface:    lipgloss.Color("#F1F5F9"),
		SurfaceAlt: lipgloss.Color("#E2E8F0"),
		Success:    lipgloss.Color("#059669"),
		Danger:     lipgloss.Color("#DC2626"),
		Heart:      lipgloss.Color("#E11D48"),
		OnAccent:   lipgloss.Color("#FFFFFF"),
	}

	DarkPalette = Palette{
		Dark:       true,
		Accent:     lipgloss.Color("#34D399"),
		Text:       lipgloss.Color("#F8FAFC"),
		Muted:      lipgloss.Color("#94A3B8"),
		Subtle:     lipgloss.Color("#64748B"),
		Surface:    lipgloss.Color("#1E293B"),
		SurfaceAlt: lipgloss.Color("#334155"),
		Success:    lipgloss.Color("#34D399"),
		Danger:     lipgloss.Color("#F87171"),
		Heart:      lipgloss.Color("#FB7185"),
		OnAccent:   lipgloss.Color("#022C22"),
	}
)

// Active colors, swapped by Apply
var (
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Surface    lipgloss.Color
	SurfaceAlt lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Heart      lipgloss.Color
	OnAccent   lipgloss.Color
)

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HeartStyle     lipgloss.Style
	HighlightStyle lipgloss.Style
)

// List item styles
var (
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
)

// Card styles
var (
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
)

// Help styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
)

// Badge styles
var (
	BadgeStyle    lipgloss.Style
	DimBadgeStyle lipgloss.Style
)

// Search bar and match highlight styles
var (
	FilterPromptStyle           lipgloss.Style
	MatchHighlightStyle         lipgloss.Style
	MatchHighlightSelectedStyle lipgloss.Style
)

// Theme icons for the header
const (
	LightIcon  = "☀"
	DarkIcon   = "☾"
	HeartChar  = "♥"
	EmptyHeart = "♡"
)

var (
	mu      sync.Mutex
	current = LightPalette
)

func init() {
	build(LightPalette)
}

// Apply switches every style to the dark or light palette.
// Call it from the Bubble Tea update loop; rendering reads these vars unguarded.
func Apply(dark bool) {
	mu.Lock()
	defer mu.Unlock()
	if dark {
		build(DarkPalette)
	} else {
		build(LightPalette)
	}
}

// Current returns the active palette
func Current() Palette {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func build(p Palette) {
	current = p

	Accent = p.Accent
	Text = p.Text
	Muted = p.Muted
	Subtle = p.Subtle
	Surface = p.Surface
	SurfaceAlt = p.SurfaceAlt
	Success = p.Success
	Danger = p.Danger
	Heart = p.Heart
	OnAccent = p.OnAccent

	TitleStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(Muted)
	DimStyle = lipgloss.NewStyle().Foreground(Subtle)
	AccentStyle = lipgloss.NewStyle().Foreground(Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(Danger)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	HeartStyle = lipgloss.NewStyle().Foreground(Heart)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(OnAccent).
		Background(Accent).
		Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(Text).
		Background(SurfaceAlt).
		Padding(0, 1)
	NormalItemStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)
	CardSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(1, 2).
		Background(Surface)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		MarginBottom(1)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(Subtle)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(OnAccent).
		Background(Accent).
		Padding(0, 1)
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Background(SurfaceAlt).
		Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	MatchHighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	MatchHighlightSelectedStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Background(SurfaceAlt).
		Bold(true)
}

// CategoryColor returns the badge color for a category
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryBreakfast:
		return lipgloss.Color("#F59E0B")
	case domain.CategoryLunch:
		return lipgloss.Color("#3B82F6")
	case domain.CategoryDessert:
		return lipgloss.Color("#EC4899")
	case domain.CategorySnack:
		return lipgloss.Color("#22C55E")
	default:
		return lipgloss.Color("#A855F7")
	}
}

// DifficultyColor returns the label color for a difficulty
func DifficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d {
	case domain.DifficultyEasy:
		return Success
	case domain.DifficultyHard:
		return Danger
	default:
		return lipgloss.Color("#F59E0B")
	}
}

// CategoryBadge renders the upper-case category pill used on cards
func CategoryBadge(c domain.Category) string {
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Bold(true).
		Render(strings.ToUpper(c.Label()))
}

// LikeIndicator renders a filled or empty heart
func LikeIndicator(liked bool) string {
	if liked {
		return HeartStyle.Render(HeartChar)
	}
	return DimStyle.Render(EmptyHeart)
}

// Helper functions

// Truncate shortens s to at most width cells, ending with an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return string(runes[:1])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// Pad pads or cuts a string to exactly width cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// RenderListRow renders a complete list row with uniform background when selected.
// This function styles each part explicitly to avoid ANSI reset code issues.
// parts is a slice of {text, fgColor} pairs. Use nil for default foreground.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var result strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(Text)
		} else {
			style = style.Foreground(Muted)
		}
		if selected {
			style = style.Background(SurfaceAlt)
		}
		result.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	padStyle := lipgloss.NewStyle()
	if selected {
		padStyle = padStyle.Background(SurfaceAlt)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	if paddingNeeded := width - visibleLen - 2; paddingNeeded > 0 {
		result.WriteString(padStyle.Render(strings.Repeat(" ", paddingNeeded)))
	}

	margin := padStyle.Render(" ")
	return margin + result.String() + margin
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}
