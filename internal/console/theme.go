package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for console output.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Border  string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// StatusColors maps a lower-cased leave status to a color.
	StatusColors map[string]string
}

// Styles contains pre-built Lipgloss styles for a theme, bound to the
// renderer of one output.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	Title       lipgloss.Style
	Border      lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	statusColors map[string]string
	text         string
}

// Styles returns Lipgloss styles for this theme rendered through r.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	return Styles{
		Text: r.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: r.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Title: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Border: r.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Header: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Cell: r.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		SuccessText: r.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: r.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: r.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: r.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		statusColors: t.StatusColors,
		text:         t.Text,
	}
}

// StatusCell returns the cell style for a leave status.
func (s Styles) StatusCell(status string) lipgloss.Style {
	color := s.statusColors[strings.ToLower(strings.TrimSpace(status))]
	if color == "" {
		color = s.text
	}
	return s.Cell.Foreground(lipgloss.Color(color))
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

// DefaultTheme is used when no preference is stored.
const DefaultTheme = "Nightfox"

// GetTheme returns a theme by name, falling back to DefaultTheme.
func GetTheme(name string) Theme {
	for key, t := range themes {
		if strings.EqualFold(key, strings.TrimSpace(name)) {
			return t
		}
	}
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:    "Nightfox",
		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Border:  "#39506d", // bg4
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		StatusColors: map[string]string{
			"pending":  "#dbc074", // yellow
			"approved": "#81b29a", // green
			"rejected": "#c94f6d", // red
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:    "Kanagawa",
		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#727169", // fujiGray
		Border:  "#54546D", // sumiInk6
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		StatusColors: map[string]string{
			"pending":  "#E6C384",
			"approved": "#98BB6C",
			"rejected": "#E46876",
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:    "Slate",
		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Border:  "#334155", // slate-700
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: map[string]string{
			"pending":  "#f59e0b",
			"approved": "#16a34a",
			"rejected": "#dc2626",
		},
	}
}
