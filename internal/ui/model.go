package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// View selects the main pane
type View int

const (
	ViewWeather View = iota // Dashboard for the committed place
	ViewCities              // Saved places list
)

const (
	zoneSearchButton = "search-button"
	zoneRailWeather  = "rail-weather"
	zoneRailCities   = "rail-cities"
	railWidth        = 14
)

func suggestionZone(i int) string {
	return fmt.Sprintf("suggestion-%d", i)
}

// Options configures a new Model
type Options struct {
	Client         weatherapi.Client
	Places         PlaceStore // nil disables the Cities view
	DefaultPlace   string
	RequestTimeout time.Duration
}

// Model represents the application's state
type Model struct {
	view   View
	width  int
	height int

	// PlaceQuery lives in the input; it is the single source of truth for the editable text
	input        textinput.Model
	defaultPlace string

	dashboard   Dashboard
	suggestions Suggestions

	// Cities
	places      PlaceStore
	placeList   list.Model
	savedPlaces []models.SavedPlace
	status      string

	spinner spinner.Model
	zones   *zone.Manager
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	defaultPlace := strings.TrimSpace(opts.DefaultPlace)
	if defaultPlace == "" {
		defaultPlace = config.DefaultPlace
	}

	ti := textinput.New()
	ti.Placeholder = "Search for cities"
	ti.SetValue(defaultPlace)
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		view:         ViewWeather,
		input:        ti,
		defaultPlace: defaultPlace,
		dashboard:    NewDashboard(opts.Client, opts.RequestTimeout),
		suggestions:  NewSuggestions(opts.Client, opts.RequestTimeout),
		places:       opts.Places,
		placeList:    createPlaceList(nil, 0, 0),
		spinner:      s,
		zones:        zone.New(),
	}
}

// State returns the dashboard's fetch state
func (m Model) State() FetchState {
	return m.dashboard.State()
}

// Query returns the text currently in the search input
func (m Model) Query() string {
	return m.input.Value()
}

// Suggestions returns the current suggestion list
func (m Model) Suggestions() []models.SuggestionEntry {
	return m.suggestions.Entries()
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick, initialize(m.defaultPlace)}
	if m.places != nil {
		cmds = append(cmds, loadPlaces(m.places))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.placeList.SetSize(msg.Width-railWidth-6, msg.Height-4)
		return m, nil

	case initializeMsg:
		return m, m.dashboard.Initialize(msg.place)

	case forecastFetchedMsg:
		m.dashboard.Apply(msg)
		return m, nil

	case suggestionsFetchedMsg:
		m.suggestions.Apply(msg)
		return m, nil

	case placesLoadedMsg:
		if msg.err != nil {
			log.Printf("loading saved places: %v", msg.err)
			m.status = "Could not load saved cities"
			return m, nil
		}
		m.savedPlaces = msg.places
		return m, m.placeList.SetItems(placeItems(msg.places))

	case placeSavedMsg:
		if msg.err != nil {
			log.Printf("saving place: %v", msg.err)
			m.status = "Could not save city"
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %s", msg.place.Name)
		return m, loadPlaces(m.places)

	case placeDeletedMsg:
		if msg.err != nil {
			log.Printf("deleting place %q: %v", msg.name, msg.err)
			m.status = "Could not delete city"
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %s", msg.name)
		return m, loadPlaces(m.places)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.view == ViewCities {
		m.placeList, cmd = m.placeList.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleKey handles keyboard input for the active view
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Let the list own the keyboard while its filter is being typed
	if m.view == ViewCities && m.placeList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.placeList, cmd = m.placeList.Update(msg)
		return m, cmd
	}

	if msg.Type == tea.KeyTab && m.places != nil {
		return m.switchView(m.otherView())
	}

	if m.view == ViewCities {
		return m.handleCitiesKey(msg)
	}
	return m.handleWeatherKey(msg)
}

// handleWeatherKey handles keys while the search input is focused
func (m Model) handleWeatherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if entry, ok := m.suggestions.Highlighted(); ok {
			return m.choose(entry)
		}
		m.status = ""
		return m, m.dashboard.SubmitKey(msg.String(), m.input.Value())

	case "up":
		m.suggestions.MoveCursor(-1)
		return m, nil

	case "down":
		m.suggestions.MoveCursor(1)
		return m, nil

	case "esc":
		m.suggestions.Dismiss()
		return m, nil

	case "ctrl+r":
		return m, m.dashboard.Retry()

	case "ctrl+s":
		return m.saveCurrent()
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)

	if m.input.Value() == before {
		return m, inputCmd
	}
	return m, tea.Batch(inputCmd, m.suggestions.QueryChanged(m.input.Value()))
}

// handleCitiesKey handles keys in the saved places list
func (m Model) handleCitiesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item, ok := m.placeList.SelectedItem().(placeItem)
		if !ok {
			return m, nil
		}
		var focusCmd tea.Cmd
		m, focusCmd = m.switchToWeather()
		m.input.SetValue(item.place.Name)
		m.input.CursorEnd()
		m.suggestions.Dismiss()
		return m, tea.Batch(focusCmd, m.dashboard.Commit(item.place.Name))

	case "d", "delete":
		if item, ok := m.placeList.SelectedItem().(placeItem); ok {
			return m, deletePlace(m.places, item.place.Name)
		}
		return m, nil

	case "esc":
		return m.switchView(ViewWeather)
	}

	var cmd tea.Cmd
	m.placeList, cmd = m.placeList.Update(msg)
	return m, cmd
}

// handleMouse selects suggestions, presses the Search button and switches rail entries
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.zones.Get(zoneRailWeather).InBounds(msg) {
		return m.switchView(ViewWeather)
	}
	if m.places != nil && m.zones.Get(zoneRailCities).InBounds(msg) {
		return m.switchView(ViewCities)
	}
	if m.view != ViewWeather {
		return m, nil
	}

	for i, entry := range m.suggestions.Entries() {
		if m.zones.Get(suggestionZone(i)).InBounds(msg) {
			return m.choose(entry)
		}
	}

	if m.zones.Get(zoneSearchButton).InBounds(msg) {
		m.status = ""
		return m, m.dashboard.Commit(m.input.Value())
	}
	return m, nil
}

// choose sets the query to the chosen suggestion and commits it
func (m Model) choose(entry models.SuggestionEntry) (Model, tea.Cmd) {
	name := m.suggestions.Choose(entry)
	m.input.SetValue(name)
	m.input.CursorEnd()
	m.status = ""
	return m, m.dashboard.Commit(name)
}

// saveCurrent stores the displayed location in the Cities list
func (m Model) saveCurrent() (Model, tea.Cmd) {
	if m.places == nil {
		return m, nil
	}
	snapshot, ok := m.dashboard.State().Snapshot()
	if !ok {
		m.status = "Nothing to save yet"
		return m, nil
	}
	return m, savePlace(m.places, models.PlaceFromLocation(snapshot.Location))
}

func (m Model) otherView() View {
	if m.view == ViewWeather {
		return ViewCities
	}
	return ViewWeather
}

func (m Model) switchView(v View) (Model, tea.Cmd) {
	if v == ViewCities {
		m.view = ViewCities
		m.input.Blur()
		m.suggestions.Dismiss()
		return m, nil
	}
	return m.switchToWeather()
}

func (m Model) switchToWeather() (Model, tea.Cmd) {
	m.view = ViewWeather
	return m, m.input.Focus()
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var main string
	if m.view == ViewCities {
		main = m.viewCities()
	} else {
		main = m.viewWeather()
	}

	return m.zones.Scan(lipgloss.JoinHorizontal(lipgloss.Top, m.viewRail(), main))
}

// viewRail renders the navigation rail. Map and Settings are placeholders.
func (m Model) viewRail() string {
	item := func(label string, active bool) string {
		if active {
			return railActiveStyle.Render(" " + label + " ")
		}
		return railItemStyle.Render(" " + label + " ")
	}

	var entries []string
	entries = append(entries, titleStyle.Render("☂ Weather"), "")
	entries = append(entries, m.zones.Mark(zoneRailWeather, item("Weather", m.view == ViewWeather)))
	if m.places != nil {
		entries = append(entries, m.zones.Mark(zoneRailCities, item("Cities", m.view == ViewCities)))
	}
	entries = append(entries, mutedStyle.Render(" Map "), mutedStyle.Render(" Settings "))

	return railStyle.Width(railWidth).Render(lipgloss.JoinVertical(lipgloss.Left, entries...))
}

// viewSearch renders the input, the Search button and the suggestion dropdown
func (m Model) viewSearch() string {
	box := searchBoxStyle.Render(m.input.View())
	button := m.zones.Mark(zoneSearchButton, buttonStyle.Render("Search"))
	bar := lipgloss.JoinHorizontal(lipgloss.Center, box, button)

	entries := m.suggestions.Entries()
	if len(entries) == 0 {
		return bar
	}

	rows := make([]string, len(entries))
	for i, entry := range entries {
		label := entry.Label()
		if i == m.suggestions.cursor {
			label = highlightStyle.Render("› " + label)
		} else {
			label = "  " + label
		}
		rows[i] = m.zones.Mark(suggestionZone(i), label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, dropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// viewWeather renders the dashboard bound to the fetch state
func (m Model) viewWeather() string {
	contentWidth := m.width - railWidth - 10
	if contentWidth < 30 {
		contentWidth = 30
	}

	var body string
	state := m.dashboard.State()
	switch state.Phase() {
	case PhaseIdle:
		body = mutedStyle.Render("Search for a city to see its weather")
	case PhaseLoading:
		body = fmt.Sprintf("%s Loading weather for %s...", m.spinner.View(), m.dashboard.LastPlace())
	case PhaseSuccess:
		snapshot, _ := state.Snapshot()
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, renderHeader(snapshot), renderForecast(snapshot, contentWidth/2))),
			paneStyle.Render(renderAirConditions(snapshot.Current)),
		)
	case PhaseFailed:
		failure, _ := state.Failure()
		body = paneStyle.Render(RenderFailure(failure))
	}

	help := "Enter: Search • ↑/↓: Suggestions • Esc: Close"
	if state.Phase() == PhaseFailed {
		help += " • Ctrl+R: Retry"
	}
	if m.places != nil {
		help += " • Ctrl+S: Save city • Tab: Cities"
	}
	help += " • Ctrl+C: Quit"

	sections := []string{m.viewSearch(), "", body}
	if m.status != "" {
		sections = append(sections, "", successStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewCities renders the saved places list
func (m Model) viewCities() string {
	var sections []string
	if len(m.savedPlaces) == 0 {
		sections = append(sections,
			titleStyle.Render("Saved Cities"),
			"",
			mutedStyle.Render("No saved cities yet. Press Ctrl+S on the Weather view to save one."),
		)
	} else {
		sections = append(sections, m.placeList.View())
	}

	if m.status != "" {
		sections = append(sections, "", successStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render("Enter: Show weather • D: Delete • /: Filter • Tab/Esc: Back • Ctrl+C: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
