package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/merge48/internal/board"
	"github.com/vovakirdan/merge48/internal/game"
	"github.com/vovakirdan/merge48/internal/storage"
	"github.com/vovakirdan/merge48/internal/strategy"
)

// PlayConfig contains configuration for an interactive session.
type PlayConfig struct {
	Seed     int64   // RNG seed (0 = time-based)
	Depth    int     // Search depth for the assist strategy (0 = strategy default)
	FourProb float64 // Spawn distribution (0 = default)
	AutoRate int     // Autopilot moves per second
	Width    int     // Initial terminal width
	Height   int     // Initial terminal height
}

// PlayModel is the Bubble Tea model for an interactive game with AI
// assistance: the player moves with the keyboard, asks for hints, or
// hands the board over to the strategy entirely.
type PlayModel struct {
	session  *game.Session
	assist   strategy.Strategy
	store    *storage.Store
	config   PlayConfig
	start    time.Time
	hint     string
	autoMode bool
	aiMoves  int
	saved    bool
	quitting bool
}

// NewPlayModel creates a new play model.
func NewPlayModel(assist strategy.Strategy, store *storage.Store, cfg PlayConfig) PlayModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	assist.Reset(strategy.Config{Seed: cfg.Seed, Depth: cfg.Depth})

	return PlayModel{
		session: game.NewSession(game.Config{Seed: cfg.Seed, FourProb: cfg.FourProb}),
		assist:  assist,
		store:   store,
		config:  cfg,
		start:   time.Now(),
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.Width = msg.Width
		m.config.Height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "p":
		m.autoMode = !m.autoMode
		m.hint = ""
		if m.autoMode {
			return m, tickCmd(m.config.AutoRate)
		}
		return m, nil

	case "?":
		if dir, ok := m.assist.NextMove(m.session.Board()); ok {
			m.hint = dir.String()
		}
		return m, nil

	case "r":
		if m.session.Over() {
			m.config.Seed = time.Now().UnixNano()
			m.session.Reset(game.Config{Seed: m.config.Seed, FourProb: m.config.FourProb})
			m.assist.Reset(strategy.Config{Seed: m.config.Seed, Depth: m.config.Depth})
			m.start = time.Now()
			m.hint = ""
			m.aiMoves = 0
			m.saved = false
		}
		return m, nil
	}

	if m.autoMode {
		return m, nil
	}

	var dir board.Direction
	switch msg.String() {
	case "up", "w", "k":
		dir = board.Up
	case "down", "s", "j":
		dir = board.Down
	case "left", "a", "h":
		dir = board.Left
	case "right", "d", "l":
		dir = board.Right
	default:
		return m, nil
	}

	m.hint = ""
	m.session.Apply(dir)
	m.maybeSave()
	return m, nil
}

// handleTick runs one autopilot move.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.autoMode {
		return m, nil
	}

	if m.session.Over() {
		m.autoMode = false
		m.maybeSave()
		return m, nil
	}

	if dir, ok := m.assist.NextMove(m.session.Board()); ok {
		m.session.Apply(dir)
		m.aiMoves++
	}
	m.maybeSave()

	return m, tickCmd(m.config.AutoRate)
}

// maybeSave persists the result once per finished game.
func (m *PlayModel) maybeSave() {
	if !m.session.Over() || m.saved || m.store == nil {
		return
	}

	strategyID := "human"
	if m.aiMoves > 0 {
		strategyID = m.assist.ID()
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveResult(storage.GameResult{
		StrategyID:   strategyID,
		Score:        m.session.Score(),
		MaxTile:      m.session.MaxTile(),
		Moves:        m.session.Moves(),
		Won:          m.session.Won(),
		DurationSecs: int(time.Since(m.start).Seconds()),
		Seed:         m.session.Seed(),
	})
	m.saved = true
}

// View renders the board and HUD.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	b := m.session.Board()

	rows := make([]string, 0, board.Size)
	for r := 0; r < board.Size; r++ {
		tiles := make([]string, 0, board.Size)
		for c := 0; c < board.Size; c++ {
			tiles = append(tiles, renderTile(b.At(r, c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	hud := hudStyle.Render(fmt.Sprintf(
		"Score %d   Max %d   Moves %d",
		m.session.Score(), m.session.MaxTile(), m.session.Moves(),
	))

	var status []string
	if m.autoMode {
		status = append(status, fmt.Sprintf("autopilot: %s", m.assist.Title()))
	}
	if m.hint != "" {
		status = append(status, fmt.Sprintf("hint: %s", m.hint))
	}

	var overlay string
	switch {
	case m.session.Over() && m.session.Won():
		overlay = overlayStyle.Render(fmt.Sprintf("GAME OVER - reached %d at move %d\nPress R to restart", game.TargetTile, m.session.WonAt()))
	case m.session.Over():
		overlay = overlayStyle.Render(fmt.Sprintf("GAME OVER - max tile %d\nPress R to restart", m.session.MaxTile()))
	case m.session.Won():
		status = append(status, fmt.Sprintf("%d reached at move %d", game.TargetTile, m.session.WonAt()))
	}

	sections := []string{
		titleStyle.Render("merge48"),
		hud,
		grid,
	}
	if len(status) > 0 {
		sections = append(sections, hudStyle.Render(strings.Join(status, "   ")))
	}
	if overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, helpStyle.Render("arrows/wasd/hjkl move · p autopilot · ? hint · r restart · q quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.config.Width > 0 && m.config.Height > 0 {
		return lipgloss.Place(m.config.Width, m.config.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts the Bubble Tea program for an interactive session.
func Run(assist strategy.Strategy, store *storage.Store, cfg PlayConfig) error {
	p := tea.NewProgram(
		NewPlayModel(assist, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
