package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/config"
	"github.com/Waddenn/streamflix/internal/store"
	"github.com/Waddenn/streamflix/internal/tui/browser"
)

type MainModel struct {
	cfg    *config.Config
	logger zerolog.Logger

	width  int
	height int

	browser *browser.Model
	list    *store.MyList
}

func NewModel(cfg *config.Config, fetcher catalog.Fetcher, logger zerolog.Logger) *MainModel {
	list := store.NewMyList()
	return &MainModel{
		cfg:    cfg,
		logger: logger,
		list:   list,
		browser: browser.NewModel(fetcher, list, logger, browser.Options{
			Timeout:   cfg.API.Timeout(),
			ImageBase: cfg.Images.BaseURL,
			Player:    cfg.Player,
		}),
	}
}

func (m *MainModel) Init() tea.Cmd {
	return m.browser.Init()
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, m.browser.Update(msg)
}

func (m *MainModel) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, m.browser.View())
}
