package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/logging"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch  AppState = iota // Typing a location, results shown below
	StateLoading                 // Fetching a forecast
	StateDisplay                 // Showing the forecast for the current location
	StateError                   // Error state
)

// DefaultDebounce is the delay between the last keystroke and a search
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Model
type Options struct {
	Service WeatherService
	Store   PreferenceStore // optional
	Logger  *slog.Logger

	// Location is fetched on start; DefaultLocation when nil
	Location *models.Location
	Unit     models.TemperatureUnit
	View     models.ForecastView
	Debounce time.Duration
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	service WeatherService
	store   PreferenceStore
	logger  *slog.Logger

	// Search
	searchInput textinput.Model
	searchSeq   int // incremented on every query change
	searchQuery string
	searching   bool
	results     []models.Location
	resultList  list.Model
	debounce    time.Duration

	// Forecast
	location *models.Location
	pending  models.Location
	fetchSeq int
	forecast *models.Forecast
	unit     models.TemperatureUnit
	view     models.ForecastView

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a city (e.g. Boston, Sydney, Marseille)..."
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	unit := opts.Unit
	if unit == "" {
		unit = models.Celsius
	}
	view := opts.View
	if view == "" {
		view = models.ViewThreeDay
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	start := models.DefaultLocation
	if opts.Location != nil {
		start = *opts.Location
	}

	return Model{
		state:       StateLoading,
		service:     opts.Service,
		store:       opts.Store,
		logger:      logger,
		searchInput: ti,
		resultList:  createLocationList(nil, 20, 5),
		debounce:    debounce,
		pending:     start,
		unit:        unit,
		view:        view,
		spinner:     s,
	}
}

// Init starts fetching the initial location
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchForecast(m.service, m.fetchSeq, m.pending))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.resultList.SetSize(listWidth(msg.Width), listHeight(msg.Height))
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			return m, nil // superseded by a later keystroke
		}
		return m.startSearch()

	case searchResultsMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			m.logger.Warn("location search failed", "query", msg.query, "error", msg.err)
			m.err = fmt.Errorf("search failed: %w", msg.err)
			m.results = nil
			return m, nil
		}
		m.err = nil
		m.results = msg.locations
		m.resultList = createLocationList(msg.locations, listWidth(m.width), listHeight(m.height))
		return m, nil

	case forecastFetchedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil // a newer selection is loading
		}
		if msg.err != nil {
			m.logger.Error("forecast fetch failed", "location", msg.location.Name, "error", msg.err)
			m.err = fmt.Errorf("loading forecast for %s: %w", msg.location.DisplayName(), msg.err)
			m.state = StateError
			return m, nil
		}
		loc := msg.location
		m.location = &loc
		m.forecast = msg.forecast
		m.err = nil
		m.state = StateDisplay
		return m, saveLocation(m.store, loc)

	case preferenceSavedMsg:
		if msg.err != nil {
			m.logger.Warn("saving preference failed", "key", msg.key, "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateDisplay:
			return m.handleDisplayKeys(keyMsg)

		case StateLoading:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to search
			return m.enterSearch()
		}
	}

	if m.state == StateSearch {
		m.searchInput, cmd = m.searchInput.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		if m.forecast != nil {
			m.state = StateDisplay
			m.searchInput.Blur()
			return m, nil
		}
		m.resetSearch()
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		if len(m.results) > 0 {
			m.resultList, cmd = m.resultList.Update(msg)
		}
		return m, cmd

	case tea.KeyEnter:
		if item, ok := m.resultList.SelectedItem().(locationItem); ok && len(m.results) > 0 {
			return m.selectLocation(item.location)
		}
		// No results yet: search now instead of waiting for the debounce
		m.searchSeq++
		return m.startSearch()
	}

	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	// Clear error when typing
	m.err = nil
	m.searchSeq++
	m.searchQuery = strings.TrimSpace(m.searchInput.Value())
	if utf8.RuneCountInString(m.searchQuery) < openmeteo.MinQueryLength {
		m.results = nil
		m.searching = false
		return m, cmd
	}

	return m, tea.Batch(cmd, debounceSearch(m.searchSeq, m.debounce))
}

// startSearch issues the search for the current query if it is long enough
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.searchInput.Value())
	if utf8.RuneCountInString(query) < openmeteo.MinQueryLength {
		return m, nil
	}
	m.searchQuery = query
	m.searching = true
	return m, searchLocations(m.service, m.searchSeq, query)
}

// handleDisplayKeys handles keyboard input in display state
func (m Model) handleDisplayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s", "/":
		return m.enterSearch()

	case "u":
		m.unit = m.unit.Toggle()
		return m, saveUnit(m.store, m.unit)

	case "tab", "v":
		m.view = m.view.Next()
		return m, nil

	case "1":
		m.view = models.ViewHourly
	case "2":
		m.view = models.ViewThreeDay
	case "3":
		m.view = models.ViewSevenDay

	case "r":
		if m.location != nil {
			return m.selectLocation(*m.location)
		}
	}

	return m, nil
}

// enterSearch focuses the search box, keeping the current forecast for Esc
func (m Model) enterSearch() (tea.Model, tea.Cmd) {
	m.state = StateSearch
	m.err = nil
	m.resetSearch()
	return m, tea.Batch(m.searchInput.Focus(), textinput.Blink)
}

func (m *Model) resetSearch() {
	m.searchInput.SetValue("")
	m.searchQuery = ""
	m.searchSeq++
	m.searching = false
	m.results = nil
}

// selectLocation starts loading the forecast for loc
func (m Model) selectLocation(loc models.Location) (tea.Model, tea.Cmd) {
	m.state = StateLoading
	m.pending = loc
	m.fetchSeq++
	m.searchInput.Blur()
	m.resetSearch()
	return m, tea.Batch(m.spinner.Tick, fetchForecast(m.service, m.fetchSeq, loc))
}

func listWidth(width int) int {
	return max(width-4, 20)
}

func listHeight(height int) int {
	return max(height-10, 5)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, errorMsg)
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("🌤  Weather Terminal")
	subtitle := mutedStyle.Render("Forecasts, moon phase, tides and activity conditions")

	searchBox := searchBoxStyle.Render(m.searchInput.View())

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, searchBox)

	if m.err != nil {
		sections = append(sections, "")
		sections = append(sections, errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}

	switch {
	case m.searching:
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("Searching for %q...", m.searchQuery)))
	case len(m.results) > 0:
		sections = append(sections, "", m.resultList.View())
	case utf8.RuneCountInString(m.searchQuery) >= openmeteo.MinQueryLength && m.err == nil:
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("No locations found for %q", m.searchQuery)))
	default:
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("Type at least %d characters to search", openmeteo.MinQueryLength)))
	}

	helpText := "↑/↓: Choose • Enter: Select • Ctrl+C: Quit"
	if m.forecast != nil {
		helpText = "↑/↓: Choose • Enter: Select • Esc: Back to forecast • Ctrl+C: Quit"
	}
	sections = append(sections, "", helpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return fmt.Sprintf("%s Loading forecast for %s...\n\n%s",
		m.spinner.View(),
		m.pending.DisplayName(),
		helpStyle.Render("Q: Quit"))
}

// viewDisplay renders the main display - simple vertical layout
func (m Model) viewDisplay() string {
	if m.forecast == nil || m.location == nil {
		return "No location selected"
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	sections = append(sections,
		sectionHeaderStyle.Render("⛅ CURRENT CONDITIONS"),
		m.renderCurrent(),
	)

	sections = append(sections,
		sectionHeaderStyle.Render("📅 FORECAST"),
		m.renderViewTabs(),
		m.renderForecast(),
	)

	sections = append(sections,
		sectionHeaderStyle.Render("🌙 MOON"),
		renderMoon(m.forecast.Current.Moon),
	)

	sections = append(sections,
		sectionHeaderStyle.Render("🌊 MARINE"),
		m.renderMarine(),
	)

	sections = append(sections,
		sectionHeaderStyle.Render("🎣 ACTIVITIES"),
		renderActivities(m.forecast.Current.Activity),
	)

	help := helpStyle.Render("S: Search • Tab/1-3: Forecast view • U: °C/°F • R: Refresh • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
