package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// helpHeight is the number of terminal lines reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving a flappy.Game. The game draws into
// the canvas on every tick and View shows the last presented frame.
type Model struct {
	game       *flappy.Game
	canvas     *Canvas
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	tickRate   int
	quitting   bool
}

// NewModel creates a model for a game whose renderer is canvas.
func NewModel(game *flappy.Game, canvas *Canvas, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Model{
		game:       game,
		canvas:     canvas,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		tickRate:   tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := m.keys.Map(msg, m.game.Screen()); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.canvas.ToWorld(msg.X, msg.Y); ok {
				m.inputFrame.Click(x, y)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		rows := msg.Height - helpHeight
		if rows < 1 {
			rows = 1
		}
		m.canvas.Resize(msg.Width, rows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	running := m.game.Frame(m.inputFrame)
	m.inputFrame.Clear()
	if !running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the last presented frame and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Front()) + "\n" +
		helpStyle.Render(m.help.View(m.keys.ForScreen(m.game.Screen())))
}

// Run runs the model full screen with mouse support until the player quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
