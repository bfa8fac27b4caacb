package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
)

type State string

const (
	StateNoFixtureSelected State = "no_fixture_selected"
	StateFixtureSelected   State = "fixture_selected"
	StateRostersLoaded     State = "rosters_loaded"
	StatePlayersSelected   State = "players_selected"
	StateSubmitting        State = "submitting"
	StateSubmitted         State = "submitted"
	StateFailed            State = "failed"
)

var (
	ErrNoFixture        = errors.New("no fixture selected")
	ErrRostersNotLoaded = errors.New("rosters not loaded")
	ErrEmptySelection   = errors.New("no players selected")
	ErrUnknownPlayer    = errors.New("player is not in either roster")
	ErrBusy             = errors.New("submission in progress")
)

// MissingRoster classifies which sides came back without eligible players.
type MissingRoster string

const (
	MissingNone MissingRoster = ""
	MissingBoth MissingRoster = "neither"
	MissingHome MissingRoster = "home-only"
	MissingAway MissingRoster = "away-only"
)

// ClassifyRosters reports the missing side(s) given the roster sizes.
func ClassifyRosters(home, away int) MissingRoster {
	switch {
	case home == 0 && away == 0:
		return MissingBoth
	case home == 0:
		return MissingHome
	case away == 0:
		return MissingAway
	default:
		return MissingNone
	}
}

// Warning is the operator-facing text for a missing roster classification.
func (m MissingRoster) Warning(f fixture.Fixture) string {
	switch m {
	case MissingBoth:
		return fmt.Sprintf("Neither %s nor %s has eligible players.", f.HomeTeamName, f.AwayTeamName)
	case MissingHome:
		return fmt.Sprintf("%s (home) has no eligible players.", f.HomeTeamName)
	case MissingAway:
		return fmt.Sprintf("%s (away) has no eligible players.", f.AwayTeamName)
	default:
		return ""
	}
}

// Composition holds the state of one match-creation session.
type Composition struct {
	state     State
	fixture   *fixture.Fixture
	home      []player.Player
	away      []player.Player
	homeIDs   map[int64]struct{}
	selection *Selection

	OnTransition func(from, to State)
}

func NewComposition() *Composition {
	return &Composition{
		state:     StateNoFixtureSelected,
		selection: NewSelection(),
	}
}

func (c *Composition) State() State {
	return c.state
}

func (c *Composition) Fixture() (fixture.Fixture, bool) {
	if c.fixture == nil {
		return fixture.Fixture{}, false
	}
	return *c.fixture, true
}

func (c *Composition) Selection() *Selection {
	return c.selection
}

func (c *Composition) Rosters() (home, away []player.Player) {
	return c.home, c.away
}

// SelectFixture starts over with f, dropping rosters and selection.
func (c *Composition) SelectFixture(f fixture.Fixture) error {
	if c.state == StateSubmitting {
		return ErrBusy
	}
	c.fixture = &f
	c.home, c.away, c.homeIDs = nil, nil, nil
	c.selection.Clear()
	c.transition(StateFixtureSelected)
	return nil
}

// LoadRosters stores both sides and classifies missing ones. The composition
// moves forward even when a side is empty.
func (c *Composition) LoadRosters(home, away []player.Player) (MissingRoster, error) {
	if c.fixture == nil {
		return MissingNone, ErrNoFixture
	}
	c.home = home
	c.away = away
	c.homeIDs = make(map[int64]struct{}, len(home))
	for _, p := range home {
		c.homeIDs[p.ID] = struct{}{}
	}
	c.transition(StateRostersLoaded)
	return ClassifyRosters(len(home), len(away)), nil
}

// Candidates merges both rosters (home first) and filters by a case-insensitive
// name or position substring.
func (c *Composition) Candidates(search string) []player.Player {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]player.Player, 0, len(c.home)+len(c.away))
	for _, roster := range [][]player.Player{c.home, c.away} {
		for _, p := range roster {
			if term == "" ||
				strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Position), term) {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Composition) findPlayer(id int64) (player.Player, bool) {
	for _, roster := range [][]player.Player{c.home, c.away} {
		for _, p := range roster {
			if p.ID == id {
				return p, true
			}
		}
	}
	return player.Player{}, false
}

// Add tags a roster player. Re-adding a selected id changes nothing.
func (c *Composition) Add(playerID int64) (bool, error) {
	if err := c.editable(); err != nil {
		return false, err
	}
	p, ok := c.findPlayer(playerID)
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownPlayer, playerID)
	}
	added := c.selection.Add(p)
	c.transition(StatePlayersSelected)
	return added, nil
}

func (c *Composition) Remove(playerID int64) (bool, error) {
	if err := c.editable(); err != nil {
		return false, err
	}
	removed := c.selection.Remove(playerID)
	if c.selection.Len() == 0 {
		c.transition(StateRostersLoaded)
	}
	return removed, nil
}

func (c *Composition) editable() error {
	switch c.state {
	case StateNoFixtureSelected:
		return ErrNoFixture
	case StateFixtureSelected:
		return ErrRostersNotLoaded
	case StateSubmitting:
		return ErrBusy
	}
	return nil
}

// OpponentFor infers the team a player faces: home roster members face the
// away side, everyone else faces the home side.
func (c *Composition) OpponentFor(playerID int64) int64 {
	if c.fixture == nil {
		return 0
	}
	if _, ok := c.homeIDs[playerID]; ok {
		return c.fixture.AwayTeamID
	}
	return c.fixture.HomeTeamID
}

// Request builds the batch payload for the current selection.
func (c *Composition) Request() (CreateRequest, error) {
	if c.fixture == nil {
		return CreateRequest{}, ErrNoFixture
	}
	if c.selection.Len() == 0 {
		return CreateRequest{}, ErrEmptySelection
	}
	req := CreateRequest{
		Matches: make([]Entry, 0, c.selection.Len()),
		Fixture: *c.fixture,
	}
	for _, id := range c.selection.IDs() {
		req.Matches = append(req.Matches, Entry{
			PlayerID:    id,
			AgainstTeam: c.OpponentFor(id),
			FixtureID:   c.fixture.ID,
		})
	}
	return req, nil
}

// BeginSubmit locks the composition and returns the payload to post.
func (c *Composition) BeginSubmit() (CreateRequest, error) {
	if c.state == StateSubmitting {
		return CreateRequest{}, ErrBusy
	}
	req, err := c.Request()
	if err != nil {
		return CreateRequest{}, err
	}
	c.transition(StateSubmitting)
	return req, nil
}

// Succeed records a successful submission and clears the form.
func (c *Composition) Succeed() {
	c.transition(StateSubmitted)
	c.fixture = nil
	c.home, c.away, c.homeIDs = nil, nil, nil
	c.selection.Clear()
	c.transition(StateNoFixtureSelected)
}

// Fail records a failed submission and reopens the untouched selection.
func (c *Composition) Fail() {
	c.transition(StateFailed)
	if c.selection.Len() > 0 {
		c.transition(StatePlayersSelected)
		return
	}
	c.transition(StateRostersLoaded)
}

// PlayerName resolves a roster player's name, or a placeholder.
func (c *Composition) PlayerName(id int64) string {
	if p, ok := c.findPlayer(id); ok {
		return p.Name
	}
	return fmt.Sprintf("player #%d", id)
}

func (c *Composition) transition(to State) {
	from := c.state
	c.state = to
	if c.OnTransition != nil && from != to {
		c.OnTransition(from, to)
	}
}
