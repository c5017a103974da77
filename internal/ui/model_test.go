package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Test doubles

type fakeService struct {
	locations []models.Location
	forecast  *models.Forecast
	searchErr error
	fetchErr  error
	queries   []string
	fetched   []models.Location
}

func (f *fakeService) Search(ctx context.Context, query string) ([]models.Location, error) {
	f.queries = append(f.queries, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.locations, nil
}

func (f *fakeService) Fetch(ctx context.Context, loc models.Location) (*models.Forecast, error) {
	f.fetched = append(f.fetched, loc)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	fc := *f.forecast
	fc.Location = loc
	return &fc, nil
}

type fakeStore struct {
	location *models.Location
	unit     models.TemperatureUnit
	err      error
}

func (f *fakeStore) SaveLocation(ctx context.Context, loc models.Location) error {
	f.location = &loc
	return f.err
}

func (f *fakeStore) SaveUnit(ctx context.Context, unit models.TemperatureUnit) error {
	f.unit = unit
	return f.err
}

var (
	testZone = time.FixedZone("EST", -5*3600)
	testNow  = time.Date(2025, 2, 3, 9, 0, 0, 0, testZone)

	boston = models.Location{Name: "Boston", Country: "United States", State: "Massachusetts", Latitude: 42.3584, Longitude: -71.0598}
	denver = models.Location{Name: "Denver", Country: "United States", State: "Colorado", Latitude: 39.7392, Longitude: -104.9903}
)

func sampleForecast(coastal bool) *models.Forecast {
	water := 18.0
	activity := &models.ActivityConditions{
		Fishing: models.ActivityScore{Rating: models.RatingExcellent, Factors: []string{"Optimal moon phase"}},
		Surfing: models.ActivityScore{Rating: models.RatingGood, Factors: []string{"Good wave height: 1.2m"}},
		Boating: models.ActivityScore{Rating: models.RatingPoor, Factors: []string{"Very strong winds - not recommended"}},
	}

	fc := &models.Forecast{
		Location: boston,
		Current: models.CurrentWeather{
			Temperature:   21,
			FeelsLike:     19,
			Condition:     models.ConditionClearDay,
			Humidity:      58,
			WindSpeed:     12,
			WindDirection: 250,
			Pressure:      1024,
			Visibility:    6000,
			UVIndex:       2.1,
			LastUpdated:   testNow,
			Sunrise:       time.Date(2025, 2, 3, 7, 0, 0, 0, testZone),
			Sunset:        time.Date(2025, 2, 3, 17, 20, 0, 0, testZone),
			High:          24,
			Low:           12,
			Moon:          models.MoonData{Phase: models.MoonWaxingCrescent, Illumination: 49, Age: 5},
			Activity:      activity,
		},
	}

	if coastal {
		fc.Current.Marine = &models.MarineData{
			WaveHeight:       1.2,
			WaveDirection:    160,
			WavePeriod:       10,
			CurrentTide:      models.TideInfo{Time: time.Date(2025, 2, 3, 6, 15, 0, 0, testZone), Height: 2.7, Type: models.TideHigh},
			NextTides:        []models.TideInfo{{Time: time.Date(2025, 2, 3, 12, 30, 0, 0, testZone), Height: 1.5, Type: models.TideLow}},
			WaterTemperature: &water,
		}
	}

	for i := 0; i < 7; i++ {
		fc.Daily = append(fc.Daily, models.DayForecast{
			Date:      time.Date(2025, 2, 3+i, 0, 0, 0, 0, testZone),
			HighTemp:  20 + float64(i),
			LowTemp:   10,
			Condition: models.ConditionRain,
			Activity:  activity,
		})
	}
	for i := 0; i < 24; i++ {
		fc.Hourly = append(fc.Hourly, models.HourForecast{
			Time:        time.Date(2025, 2, 3, i, 0, 0, 0, testZone),
			Temperature: 15,
			Condition:   models.ConditionCloudy,
			Activity:    activity,
		})
	}

	return fc
}

func newTestModel(svc *fakeService, store *fakeStore) Model {
	opts := Options{Service: svc}
	if store != nil {
		opts.Store = store
	}
	m := NewModel(opts)
	m.width = 100
	m.height = 40
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// displayModel returns a model showing Boston's forecast
func displayModel(t *testing.T, svc *fakeService, store *fakeStore) Model {
	t.Helper()
	m := newTestModel(svc, store)
	m, _ = update(t, m, forecastFetchedMsg{seq: m.fetchSeq, location: boston, forecast: svc.forecast})
	if m.state != StateDisplay {
		t.Fatalf("state = %v, want StateDisplay", m.state)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel(Options{})

	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if m.unit != models.Celsius {
		t.Errorf("NewModel() unit = %v, want celsius", m.unit)
	}
	if m.view != models.ViewThreeDay {
		t.Errorf("NewModel() view = %v, want three-day", m.view)
	}
	if m.pending != models.DefaultLocation {
		t.Errorf("NewModel() pending = %+v, want default location", m.pending)
	}
	if m.debounce != DefaultDebounce {
		t.Errorf("NewModel() debounce = %v, want %v", m.debounce, DefaultDebounce)
	}
}

func TestNewModel_Options(t *testing.T) {
	m := NewModel(Options{
		Location: &denver,
		Unit:     models.Fahrenheit,
		View:     models.ViewHourly,
		Debounce: 100 * time.Millisecond,
	})

	if m.pending != denver {
		t.Errorf("pending = %+v, want Denver", m.pending)
	}
	if m.unit != models.Fahrenheit {
		t.Errorf("unit = %v, want fahrenheit", m.unit)
	}
	if m.view != models.ViewHourly {
		t.Errorf("view = %v, want hourly", m.view)
	}
	if m.debounce != 100*time.Millisecond {
		t.Errorf("debounce = %v, want 100ms", m.debounce)
	}
}

func TestModel_Init_FetchesInitialLocation(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	m := NewModel(Options{Service: svc, Location: &denver})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned nil command")
	}

	msg := fetchForecast(svc, m.fetchSeq, m.pending)()
	fetched, ok := msg.(forecastFetchedMsg)
	if !ok {
		t.Fatalf("fetchForecast() msg = %T, want forecastFetchedMsg", msg)
	}
	if fetched.err != nil || fetched.forecast == nil {
		t.Fatalf("fetchForecast() = %+v", fetched)
	}
	if len(svc.fetched) != 1 || svc.fetched[0] != denver {
		t.Errorf("fetched = %+v, want [Denver]", svc.fetched)
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_Update_ErrorMsg(t *testing.T) {
	m := NewModel(Options{})

	m, _ = update(t, m, errMsg{err: errors.New("terminal closed")})

	if m.state != StateError {
		t.Errorf("After errMsg, state = %v, want StateError", m.state)
	}
	if m.err == nil {
		t.Error("After errMsg, err should not be nil")
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	for _, state := range []AppState{StateSearch, StateLoading, StateDisplay, StateError} {
		m := NewModel(Options{})
		m.state = state

		_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatalf("state %v: expected Ctrl+C to return quit command", state)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("state %v: Ctrl+C command did not quit", state)
		}
	}
}

func TestModel_ForecastFetched(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	store := &fakeStore{}
	m := newTestModel(svc, store)

	m, cmd := update(t, m, forecastFetchedMsg{seq: m.fetchSeq, location: boston, forecast: svc.forecast})

	if m.state != StateDisplay {
		t.Errorf("state = %v, want StateDisplay", m.state)
	}
	if m.location == nil || *m.location != boston {
		t.Errorf("location = %+v, want Boston", m.location)
	}
	if cmd == nil {
		t.Fatal("expected command to save the location")
	}

	msg := cmd()
	if saved, ok := msg.(preferenceSavedMsg); !ok || saved.err != nil {
		t.Errorf("save command msg = %+v", msg)
	}
	if store.location == nil || *store.location != boston {
		t.Errorf("stored location = %+v, want Boston", store.location)
	}
}

func TestModel_ForecastFetched_NoStore(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	m := newTestModel(svc, nil)

	m, cmd := update(t, m, forecastFetchedMsg{seq: m.fetchSeq, location: boston, forecast: svc.forecast})

	if m.state != StateDisplay {
		t.Errorf("state = %v, want StateDisplay", m.state)
	}
	if cmd != nil {
		t.Error("expected no save command without a store")
	}
}

func TestModel_ForecastFetched_Stale(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	m := newTestModel(svc, nil)
	m.fetchSeq = 2

	m, _ = update(t, m, forecastFetchedMsg{seq: 1, location: denver, forecast: svc.forecast})

	if m.state != StateLoading {
		t.Errorf("state = %v, want StateLoading (stale result ignored)", m.state)
	}
	if m.forecast != nil {
		t.Error("stale forecast should not be stored")
	}
}

func TestModel_ForecastFetched_Error(t *testing.T) {
	m := newTestModel(&fakeService{}, nil)

	m, _ = update(t, m, forecastFetchedMsg{seq: m.fetchSeq, location: boston, err: errors.New("status 503")})

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.err.Error(), "Boston") {
		t.Errorf("err = %v, want location in message", m.err)
	}

	// Any key returns to search
	m, _ = update(t, m, keyRunes("x"))
	if m.state != StateSearch {
		t.Errorf("state = %v, want StateSearch", m.state)
	}
	if m.err != nil {
		t.Error("error should be cleared on return to search")
	}
	if !m.searchInput.Focused() {
		t.Error("search input should be focused")
	}
}

func TestModel_ErrorState_QQuits(t *testing.T) {
	m := newTestModel(&fakeService{}, nil)
	m.state = StateError

	_, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected q to quit from error state")
	}
}

func TestModel_DisplayKeys(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	store := &fakeStore{}
	m := displayModel(t, svc, store)

	// Unit toggle persists
	m, cmd := update(t, m, keyRunes("u"))
	if m.unit != models.Fahrenheit {
		t.Errorf("unit = %v, want fahrenheit", m.unit)
	}
	if cmd == nil {
		t.Fatal("expected save command after unit toggle")
	}
	cmd()
	if store.unit != models.Fahrenheit {
		t.Errorf("stored unit = %v, want fahrenheit", store.unit)
	}

	// View cycling
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != models.ViewSevenDay {
		t.Errorf("after tab view = %v, want seven-day", m.view)
	}
	m, _ = update(t, m, keyRunes("v"))
	if m.view != models.ViewHourly {
		t.Errorf("after v view = %v, want hourly", m.view)
	}
	m, _ = update(t, m, keyRunes("2"))
	if m.view != models.ViewThreeDay {
		t.Errorf("after 2 view = %v, want three-day", m.view)
	}
	m, _ = update(t, m, keyRunes("3"))
	if m.view != models.ViewSevenDay {
		t.Errorf("after 3 view = %v, want seven-day", m.view)
	}
	m, _ = update(t, m, keyRunes("1"))
	if m.view != models.ViewHourly {
		t.Errorf("after 1 view = %v, want hourly", m.view)
	}

	if m.state != StateDisplay {
		t.Errorf("state = %v, want StateDisplay", m.state)
	}
}

func TestModel_Refresh(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	m := displayModel(t, svc, nil)
	seq := m.fetchSeq

	m, cmd := update(t, m, keyRunes("r"))

	if m.state != StateLoading {
		t.Errorf("state = %v, want StateLoading", m.state)
	}
	if m.fetchSeq != seq+1 {
		t.Errorf("fetchSeq = %d, want %d", m.fetchSeq, seq+1)
	}
	if m.pending != boston {
		t.Errorf("pending = %+v, want Boston", m.pending)
	}
	if cmd == nil {
		t.Error("expected fetch command")
	}
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name  string
		state AppState
	}{
		{"search", StateSearch},
		{"loading", StateLoading},
		{"display", StateDisplay},
		{"error", StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{forecast: sampleForecast(true)}
			m := displayModel(t, svc, nil)
			m.state = tt.state

			view := m.View()
			if view == "" {
				t.Errorf("View() returned empty string for state %v", tt.state)
			}
		})
	}
}

func TestModel_View_Display(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(true)}
	m := displayModel(t, svc, nil)

	view := m.View()
	for _, want := range []string{
		"Boston, Massachusetts, United States",
		"US East Coast",
		"21°C",
		"WSW 12 km/h",
		"Today",
		"Tomorrow",
		"Waxing Crescent",
		"Tide now:",
		"12:30 PM",
		"18°C",
		"Fishing",
		"EXCELLENT",
		"Very strong winds - not recommended",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("display view missing %q", want)
		}
	}

	// Three-day view shows only the first three days
	if strings.Contains(view, "Thursday") {
		t.Error("three-day view should not include the fourth day")
	}

	m, _ = update(t, m, keyRunes("3"))
	if !strings.Contains(m.View(), "Sunday") {
		t.Error("seven-day view should include the last day")
	}

	m, _ = update(t, m, keyRunes("u"))
	if !strings.Contains(m.View(), "70°F") {
		t.Error("fahrenheit view should convert temperatures")
	}

	m, _ = update(t, m, keyRunes("1"))
	if !strings.Contains(m.View(), "11 PM") {
		t.Error("hourly view should list 24 hours")
	}
}

func TestModel_View_Inland(t *testing.T) {
	svc := &fakeService{forecast: sampleForecast(false)}
	m := newTestModel(svc, nil)
	m, _ = update(t, m, forecastFetchedMsg{seq: m.fetchSeq, location: denver, forecast: svc.forecast})

	view := m.View()
	if !strings.Contains(view, "only available for coastal locations") {
		t.Error("inland view should explain missing marine data")
	}
	if strings.Contains(view, "US East Coast") {
		t.Error("inland header should not name a coastal region")
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(Options{})
	view := m.View()

	if view != "Loading..." {
		t.Errorf("View() before window size = %q, want 'Loading...'", view)
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateSearch != 0 {
		t.Errorf("StateSearch = %d, want 0", StateSearch)
	}
	if StateLoading != 1 {
		t.Errorf("StateLoading = %d, want 1", StateLoading)
	}
	if StateDisplay != 2 {
		t.Errorf("StateDisplay = %d, want 2", StateDisplay)
	}
	if StateError != 3 {
		t.Errorf("StateError = %d, want 3", StateError)
	}
}
