package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/sp/internal/services"
)

var _ list.Item = trackItem{}

// trackItem wraps [services.Track] to implement [list.Item].
type trackItem struct {
	track services.Track
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return i.track.Name }
func (i trackItem) Description() string {
	desc := i.track.Artists.String()
	if i.track.DurationMS > 0 {
		s := i.track.DurationMS / 1000
		desc = fmt.Sprintf("%s • %d:%02d", desc, s/60, s%60)
	}
	return desc
}

// pickerModel is the bubbletea model for the track picker.
type pickerModel struct {
	list   list.Model
	choice *services.Track
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				track := item.track
				m.choice = &track
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// PickTrack presents an interactive list of tracks and returns the selection.
//
// Returns nil when the user dismisses the picker without choosing.
func PickTrack(title string, tracks []services.Track) (*services.Track, error) {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = styles.title

	program := tea.NewProgram(pickerModel{list: l}, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model type")
	}
	return model.choice, nil
}
