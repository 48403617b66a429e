// Package tui holds the interactive terminal browser for datasets:
// arrow keys walk the variables, the right panel previews the selected
// one as a sparkline or a braille field.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/preview"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	ds     *array.Dataset
	names  []string
	cursor int

	themeIdx int

	width  int
	height int
}

// NewBrowser builds the browser model for a loaded dataset.
func NewBrowser(ds *array.Dataset, theme string) model {
	idx := 0
	for i, t := range preview.Themes {
		if t.Name == theme {
			idx = i
		}
	}
	return model{
		ds:       ds,
		names:    ds.VarNames(),
		themeIdx: idx,
		width:    80,
		height:   24,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(ds *array.Dataset, theme string) error {
	if ds.NumVars() == 0 {
		return fmt.Errorf("tui: dataset has no variables")
	}
	_, err := tea.NewProgram(NewBrowser(ds, theme), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(preview.Themes)
		}
	}
	return m, nil
}

func (m model) View() string {
	theme := preview.Themes[m.themeIdx]

	var list strings.Builder
	list.WriteString(cyan.Render("variables") + "\n")
	for i, name := range m.names {
		da := m.ds.Var(name)
		line := fmt.Sprintf("%s  %v", name, da.Dims)
		if i == m.cursor {
			list.WriteString(green.Render("> "+line) + "\n")
		} else {
			list.WriteString(white.Render("  "+line) + "\n")
		}
	}

	panelW := m.width - 4
	if panelW > 100 {
		panelW = 100
	}
	panel := m.renderVar(m.names[m.cursor], panelW, theme)

	help := dim.Render("↑/↓ variable · t theme · q quit")
	return list.String() + "\n" + panel + "\n" + help + "\n"
}

// renderVar previews one variable: 2-D lat/lon fields as braille shade
// maps, everything else reduced to a series sparkline.
func (m model) renderVar(name string, width int, theme preview.Theme) string {
	da := m.ds.Var(name).Squeeze()

	if da.NDim() == 2 && da.HasDim("lat") && da.HasDim("lon") {
		out, err := preview.FieldBraille(da, width/2, 12, theme)
		if err != nil {
			return yellow.Render(err.Error())
		}
		return out
	}

	// reduce leading dimensions until a 1-D series remains
	for da.NDim() > 1 {
		next, err := da.SelIndex(da.Dims[0], 0)
		if err != nil {
			return yellow.Render(err.Error())
		}
		da = next.Squeeze()
	}
	out, err := preview.Sparkline(da, preview.SparkOpts{
		Width:  width,
		Height: 10,
		Theme:  theme,
	})
	if err != nil {
		return yellow.Render(err.Error())
	}
	return out
}
