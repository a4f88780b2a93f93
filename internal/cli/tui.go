package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// VersionPickerModel - Interactive version selection
// =============================================================================

// VersionPickerModel is the bubbletea model for interactive version selection.
type VersionPickerModel struct {
	Coord    string
	Versions []string
	Release  string
	Latest   string
	Cursor   int
	Height   int
	Offset   int
	Choice   string
}

// newVersionPicker creates a version picker for the given coordinate. The
// release and latest markers may be empty when the metadata lacks them.
func newVersionPicker(coord string, versions []string, release, latest string) VersionPickerModel {
	m := VersionPickerModel{
		Coord:    coord,
		Versions: versions,
		Release:  release,
		Latest:   latest,
		Height:   15,
	}
	// Start on the release version when there is one.
	for i, v := range versions {
		if v == release {
			m.Cursor = i
			break
		}
	}
	if m.Cursor >= m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

func (m VersionPickerModel) Init() tea.Cmd {
	return nil
}

func (m VersionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Versions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Choice = m.Versions[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m VersionPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Version"))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(m.Coord))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Versions) {
		end = len(m.Versions)
	}

	for i := m.Offset; i < end; i++ {
		v := m.Versions[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		marker := ""
		switch v {
		case m.Release:
			marker = "  " + StyleSuccess.Render("(release)")
		case m.Latest:
			marker = "  " + listDimStyle.Render("(latest)")
		}

		line := cursor + v
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line) + marker)
		} else {
			b.WriteString(listNormalStyle.Render(line) + marker)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Versions))))

	return b.String()
}

// runVersionPicker runs the picker and returns the chosen version, or an
// empty string when the user quits without selecting.
func runVersionPicker(m VersionPickerModel) (string, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("version picker: %w", err)
	}
	if picked, ok := final.(VersionPickerModel); ok {
		return picked.Choice, nil
	}
	return "", nil
}
