package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gomirror "github.com/jdginn/go-mirror-studio/mirror"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	obs gomirror.Observation
}

func (i item) Title() string {
	terminal := i.obs.Terminal()
	if terminal == "" {
		terminal = "escaped"
	}
	return fmt.Sprintf("%7.2f° -> %s", gomirror.Degrees(i.obs.Heading), terminal)
}

func (i item) Description() string {
	desc := fmt.Sprintf("%d reflections, %.3f m", i.obs.Path.Bounces(), i.obs.Path.TotalLength())
	if len(i.obs.Images) > 0 {
		img := i.obs.Images[0].Position
		desc += fmt.Sprintf(", image at (%.3f, %.3f)", img.X, img.Y)
	}
	return desc
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

func newModel(title string, observations []gomirror.Observation) model {
	items := make([]list.Item, len(observations))
	for i, obs := range observations {
		items[i] = item{obs: obs}
	}
	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0)}
	m.list.Title = title
	return m
}

// Browse shows the observations in a scrollable, filterable terminal list until the user quits
func Browse(title string, observations []gomirror.Observation) error {
	p := tea.NewProgram(newModel(title, observations), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
