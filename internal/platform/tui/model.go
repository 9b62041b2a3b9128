package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/storage"
)

// helpLines is the number of terminal rows reserved below the playfield.
const helpLines = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal game.
type Options struct {
	Cols, Rows int     // Terminal size in cells
	CellW      float64 // Logical units per column
	CellH      float64 // Logical units per row
	KeyHold    time.Duration
	TickRate   int
	Seed       int64 // 0 = time based
	Player     string
	Scores     storage.ScoreSaver // Optional
	Logger     *log.Logger
}

// Model is the Bubble Tea model running one breakout game.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	canvas   *core.Canvas
	keys     *core.KeyState
	keymap   KeyMap
	help     help.Model
	recorder *storage.Recorder
	logger   *log.Logger
	clock    func() time.Time
	tickRate int
	last     time.Time
	phase    breakout.State
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	screen := core.NewScreen(opts.Cols, max(opts.Rows-helpLines, 1))
	canvas := core.NewCanvas(screen, opts.CellW, opts.CellH)
	w, h := canvas.ScreenSize()

	game := breakout.New(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	hm := help.New()
	hm.Width = opts.Cols

	return Model{
		game:     game,
		screen:   screen,
		canvas:   canvas,
		keys:     core.NewKeyState(opts.KeyHold),
		keymap:   DefaultKeyMap(),
		help:     hm,
		recorder: storage.NewRecorder(opts.Scores, opts.Player, opts.Logger),
		logger:   opts.Logger,
		clock:    time.Now,
		tickRate: opts.TickRate,
		phase:    game.Phase(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if k, ok := m.keymap.Lookup(msg); ok {
		m.keys.Press(k, m.clock())
	}
	return m, nil
}

// handleResize keeps the playfield matched to the terminal. The game keeps
// running; entities are not moved.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-helpLines, 1))
	m.game.Resize(m.canvas.ScreenSize())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.last, now, m.tickRate)
	m.last = now

	m.keys.Advance(now)
	result := m.game.Step(m.keys, dt)
	m.keys.EndFrame()

	if phase := m.game.Phase(); phase != m.phase {
		m.logger.Debug("state changed", "from", m.phase, "to", phase, "score", result.State.Score)
		m.phase = phase
	}
	m.recorder.Observe(result.State)

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keymap))
}

// Game returns the running game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
