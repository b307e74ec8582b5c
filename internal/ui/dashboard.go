package ui

import (
	"errors"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

var errEmptyForecast = errors.New("empty forecast")

// Phase identifies which variant of FetchState holds
type Phase int

const (
	PhaseIdle    Phase = iota // Nothing requested yet
	PhaseLoading              // A forecast fetch is in flight
	PhaseSuccess              // The latest fetch produced a snapshot
	PhaseFailed               // The latest fetch failed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseSuccess:
		return "Success"
	case PhaseFailed:
		return "Failed"
	default:
		return "Idle"
	}
}

// Failure is the user-facing payload of a failed fetch
type Failure struct {
	Title   string
	Message string
	Hint    string // optional, e.g. how to configure the credential
	Kind    string // client error kind, "unknown" for anything else
	Err     error
}

// FetchState is the dashboard's tagged union: Idle, Loading, Success(snapshot) or Failed(failure).
// Values are built only through the constructors below, so a payload always matches its phase.
type FetchState struct {
	phase    Phase
	snapshot *models.WeatherSnapshot
	failure  *Failure
}

// IdleState returns the state before any fetch is committed
func IdleState() FetchState {
	return FetchState{phase: PhaseIdle}
}

// LoadingState returns the in-flight state. It carries no payload.
func LoadingState() FetchState {
	return FetchState{phase: PhaseLoading}
}

// SuccessState wraps a fetched snapshot
func SuccessState(snapshot *models.WeatherSnapshot) FetchState {
	return FetchState{phase: PhaseSuccess, snapshot: snapshot}
}

// FailedState wraps a failure
func FailedState(f Failure) FetchState {
	return FetchState{phase: PhaseFailed, failure: &f}
}

// Phase reports which variant holds
func (s FetchState) Phase() Phase {
	return s.phase
}

// Snapshot returns the snapshot when the state is Success
func (s FetchState) Snapshot() (*models.WeatherSnapshot, bool) {
	if s.phase != PhaseSuccess {
		return nil, false
	}
	return s.snapshot, true
}

// Failure returns the failure when the state is Failed
func (s FetchState) Failure() (Failure, bool) {
	if s.phase != PhaseFailed || s.failure == nil {
		return Failure{}, false
	}
	return *s.failure, true
}

func (s FetchState) String() string {
	return s.phase.String()
}

// FailureFrom converts any client error into the single message shown to the user.
// The kind is kept for logging and for the credential hint.
func FailureFrom(err error) Failure {
	f := Failure{
		Title:   "Not Available",
		Message: "Please check the city name and try again.",
		Kind:    "unknown",
		Err:     err,
	}
	if kind, ok := weatherapi.KindOf(err); ok {
		f.Kind = kind.String()
	}
	if weatherapi.IsConfig(err) {
		f.Hint = "Set " + config.APIKeyEnv + " to your weatherapi.com key."
	}
	return f
}

// Dashboard owns the FetchState and commits place queries into forecast fetches.
// Only the most recently committed fetch may change the state.
type Dashboard struct {
	client    weatherapi.Client
	timeout   time.Duration
	state     FetchState
	seq       uint64
	lastPlace string
}

// NewDashboard creates an idle dashboard controller
func NewDashboard(client weatherapi.Client, timeout time.Duration) Dashboard {
	return Dashboard{
		client:  client,
		timeout: timeout,
		state:   IdleState(),
	}
}

// State returns the current fetch state
func (d *Dashboard) State() FetchState {
	return d.state
}

// LastPlace returns the most recently committed place
func (d *Dashboard) LastPlace() string {
	return d.lastPlace
}

// Commit starts a forecast fetch for place. A blank place is a no-op and returns nil.
func (d *Dashboard) Commit(place string) tea.Cmd {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil
	}

	d.seq++
	d.state = LoadingState()
	d.lastPlace = place
	return fetchForecast(d.client, d.timeout, d.seq, place)
}

// Initialize commits the default place at session start
func (d *Dashboard) Initialize(defaultPlace string) tea.Cmd {
	return d.Commit(defaultPlace)
}

// SubmitKey commits place when key is the confirm key
func (d *Dashboard) SubmitKey(key, place string) tea.Cmd {
	if key != "enter" {
		return nil
	}
	return d.Commit(place)
}

// Retry re-commits the last place after a failure
func (d *Dashboard) Retry() tea.Cmd {
	if d.state.Phase() != PhaseFailed {
		return nil
	}
	return d.Commit(d.lastPlace)
}

// Apply records a fetch result. Results from superseded commits are dropped
// and Apply reports false.
func (d *Dashboard) Apply(msg forecastFetchedMsg) bool {
	if msg.seq != d.seq {
		log.Printf("dropping stale forecast for %q (seq %d, latest %d)", msg.place, msg.seq, d.seq)
		return false
	}

	if msg.err != nil {
		f := FailureFrom(msg.err)
		log.Printf("forecast for %q failed (%s): %v", msg.place, f.Kind, msg.err)
		d.state = FailedState(f)
		return true
	}

	if msg.snapshot == nil {
		log.Printf("forecast for %q returned no data", msg.place)
		d.state = FailedState(FailureFrom(errEmptyForecast))
		return true
	}

	d.state = SuccessState(msg.snapshot)
	return true
}
