package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

// maxScores caps the runs loaded per game.
const maxScores = 100

// scoreboardKeys are the scoreboard bindings; they double as its help text.
type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func paletteColor(c core.RGB) lipgloss.Color {
	return lipgloss.Color(c.String())
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(paletteColor(core.ColorPrimary))
	boardTabStyle   = lipgloss.NewStyle().Foreground(paletteColor(core.ColorDim)).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(paletteColor(core.ColorField)).Background(paletteColor(core.ColorSecondary))
	boardBestStyle  = lipgloss.NewStyle().Foreground(paletteColor(core.ColorAccent))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(paletteColor(core.ColorBorder)).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(paletteColor(core.ColorDim))
)

// scoreboardGame is a registered game and its high score key.
type scoreboardGame struct {
	registry.GameInfo
	Key string
}

// ScoreboardModel shows the run history and persisted best of each game.
type ScoreboardModel struct {
	games  []scoreboardGame
	cursor int
	store  *storage.Store
	scores []storage.ScoreEntry
	best   int

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	infos := registry.List()
	games := make([]scoreboardGame, 0, len(infos))
	for _, info := range infos {
		g := scoreboardGame{GameInfo: info}
		if game, err := registry.Create(info.ID); err == nil {
			g.Key = game.HighScoreKey()
		}
		games = append(games, g)
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	if len(m.games) > 0 {
		m.loadScores()
	}
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	date := core.Clamp(m.width-30, 12, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: date},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(paletteColor(core.ColorBorder)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(paletteColor(core.ColorField)).
		Background(paletteColor(core.ColorAccent)).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores reads the selected game's runs and best score.
func (m *ScoreboardModel) loadScores() {
	g := m.games[m.cursor]
	m.scores, m.best = nil, 0
	if m.store != nil {
		if scores, err := m.store.TopScores(g.ID, maxScores); err == nil {
			m.scores = scores
		}
		if g.Key != "" {
			if best, err := m.store.LoadHighScore(g.Key); err == nil {
				m.best = best
			}
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectGame moves the game cursor by step, wrapping around.
func (m *ScoreboardModel) selectGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + step + len(m.games)) % len(m.games)
	m.loadScores()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	if len(m.games) == 0 {
		b.WriteString(centerText(boardDimStyle.Render("No games registered."), m.width))
		return b.String()
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width {
		tabLine = boardActiveTab.Render("< " + m.games[m.cursor].Title + " >")
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Best: %d   Runs: %d", m.best, len(m.scores))
	b.WriteString(centerText(boardBestStyle.Render(summary), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nTap in and set a high score!")
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
