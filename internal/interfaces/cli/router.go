package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Route is one screen of the console. Patterns use ":name" segments.
type Route struct {
	Pattern string
	Title   string
	Public  bool
}

// Match is a resolved route with its path parameters.
type Match struct {
	Route  Route
	Params map[string]string
}

// NotFound is returned for paths no route matches.
var NotFound = Route{Pattern: "*", Title: "Page not found", Public: true}

var routes = []Route{
	{Pattern: "/", Title: "Login", Public: true},
	{Pattern: "/dashboard", Title: "Dashboard"},
	{Pattern: "/teams", Title: "Teams"},
	{Pattern: "/teams/:teamId/players", Title: "Team players"},
	{Pattern: "/players", Title: "Players"},
	{Pattern: "/rooms", Title: "Rooms"},
	{Pattern: "/rooms/:id", Title: "Room detail"},
	{Pattern: "/matches", Title: "Matches"},
	{Pattern: "/match-create", Title: "Create matches"},
	{Pattern: "/users", Title: "Users"},
	{Pattern: "/sync-logs", Title: "Sync logs"},
	{Pattern: "/fixtures", Title: "Fixtures"},
	{Pattern: "/countries", Title: "Countries"},
	{Pattern: "/leagues", Title: "Leagues"},
	{Pattern: "/leagues/:leagueId", Title: "League detail"},
	{Pattern: "/seasons", Title: "Seasons"},
	{Pattern: "/rounds", Title: "Rounds"},
	{Pattern: "/tournaments", Title: "Tournaments"},
	{Pattern: "/withdrawals", Title: "Withdrawals"},
}

// Routes lists every known route in menu order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve matches path against the route table. Unknown paths resolve to
// NotFound, with the normalized path under the "path" parameter.
func Resolve(path string) Match {
	path = normalizePath(path)
	segments := splitPath(path)
	for _, r := range routes {
		if params, ok := matchPattern(r.Pattern, segments); ok {
			return Match{Route: r, Params: params}
		}
	}
	return Match{Route: NotFound, Params: map[string]string{"path": path}}
}

// IntParam returns a positive numeric path parameter.
func (m Match) IntParam(name string) (int64, error) {
	raw, ok := m.Params[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func matchPattern(pattern string, segments []string) (map[string]string, bool) {
	parts := splitPath(pattern)
	if len(parts) != len(segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, part := range parts {
		if name, ok := strings.CutPrefix(part, ":"); ok {
			if segments[i] == "" {
				return nil, false
			}
			params[name] = segments[i]
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
