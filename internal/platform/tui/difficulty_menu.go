package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvasiliev/arcade-core/internal/config"
)

// difficultyOption pairs a preset with its menu description.
type difficultyOption struct {
	Preset config.DifficultyPreset
	Label  string
	Desc   string
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	gameTitle string
	options   []difficultyOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	chosen    bool
	back      bool
	quitting  bool
}

// NewDifficultyModel creates a difficulty selection model for the given game.
func NewDifficultyModel(gameTitle string, width, height int) DifficultyModel {
	return DifficultyModel{
		gameTitle: gameTitle,
		options: []difficultyOption{
			{config.DifficultyEasy, "Easy", "slower pace, forgiving opponent"},
			{config.DifficultyNormal, "Normal", "the intended experience"},
			{config.DifficultyHard, "Hard", "fast and unforgiving"},
		},
		cursor:    1, // default to normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.options[m.cursor].Preset
		m.chosen = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty menu.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.gameTitle, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.Label, opt.Desc)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// DifficultyResult holds the outcome of the difficulty menu.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Back   bool
	Quit   bool
}

// RunDifficultyMenu shows the difficulty picker and returns the selection.
func RunDifficultyMenu(gameTitle string, width, height int) (DifficultyResult, error) {
	p := tea.NewProgram(
		NewDifficultyModel(gameTitle, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultyResult{Quit: true}, nil
	}

	switch {
	case m.chosen:
		return DifficultyResult{Preset: m.selected}, nil
	case m.back:
		return DifficultyResult{Back: true}, nil
	default:
		return DifficultyResult{Quit: true}, nil
	}
}
