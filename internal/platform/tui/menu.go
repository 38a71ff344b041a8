package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

// Menu styles
var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Padding(1, 0)

	menuSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// MenuItem represents a selectable game variant.
type MenuItem struct {
	GameID string
	Title  string
	Zones  int
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []MenuItem
	results  *Results
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
	selected *MenuItem // Set when user selects a game
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(results *Results, cfg core.RuntimeConfig) MenuModel {
	if results == nil {
		results = NewResults()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, info := range games {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if g, err := registry.Create(info.ID); err == nil {
			if zc, ok := g.(zoneCounter); ok {
				item.Zones = zc.Zones()
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:   items,
		results: results,
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		config:  cfg,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table with one row per item.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 26},
		{Title: "Zones", Width: 6},
		{Title: "Rounds", Width: 7},
		{Title: "Best", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(min(len(m.items)+1, m.height-8), 2)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rows formats the items with this session's results.
func (m *MenuModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		zones := "-"
		if item.Zones > 0 {
			zones = strconv.Itoa(item.Zones)
		}
		best := "-"
		if d, ok := m.results.Best(item.GameID); ok {
			best = fmt.Sprintf("%.3fs", d.Seconds())
		}
		rows = append(rows, table.Row{
			item.Title,
			zones,
			strconv.Itoa(m.results.Rounds(item.GameID)),
			best,
		})
	}
	return rows
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.items) {
				selected := m.items[cursor]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(min(len(m.items)+1, m.height-8), 2))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("L I G H T   C Y C L E S"))
	b.WriteString("\n")
	b.WriteString(menuSubtitleStyle.Render("Select a variant"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.PlaceHorizontal(max(m.width, 1), lipgloss.Center, b.String())
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
