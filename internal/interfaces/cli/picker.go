package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
)

// zonePicker is the interactive selection shown by `zone select` when
// no zone argument is given.
type zonePicker struct {
	zones  []entity.Zone
	cursor int
	choice *entity.Zone
}

func (m zonePicker) Init() tea.Cmd {
	return nil
}

func (m zonePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.zones)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = &m.zones[m.cursor]
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m zonePicker) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Select a zone"))
	sb.WriteString("\n\n")
	for i, zone := range m.zones {
		line := fmt.Sprintf("%s  %s", zone.Name, zone.ID)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("↑/↓ move · enter select · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// pickZone runs the picker and returns the chosen zone, or nil when
// the user backed out.
func pickZone(zones []entity.Zone) (*entity.Zone, error) {
	if len(zones) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(zonePicker{zones: zones}).Run()
	if err != nil {
		return nil, fmt.Errorf("running zone picker: %w", err)
	}
	return final.(zonePicker).choice, nil
}
