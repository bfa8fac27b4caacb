package starpick

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/infrastructure/sessionstore"
	"github.com/riskibarqy/starpick-admin/internal/platform/id"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, store session.Store, navigate Navigator) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL + "/api/v1/",
		Sessions:       store,
		OnUnauthorized: navigate,
		IDs:            id.Static("req-1"),
		Logger:         logging.NewNop(),
	})
}

func TestTeamRepository_List_SendsAuthAndDecodesPage(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore(session.Session{Token: "token-abc"})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/teams" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("unexpected request id: %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("unexpected page param: %q", got)
		}
		if got := r.URL.Query().Get("search"); got != "arsenal" {
			t.Errorf("unexpected search param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"teams":{"data":[{"id":5,"external_id":42,"name":"Arsenal","status":1}],
			"current_page":2,"last_page":3,"per_page":1,"total":3,"from":2,"to":2,
			"prev_page_url":"http://x/?page=1","next_page_url":"http://x/?page=3","links":[]}}}`)
	}, store, nil)

	page, err := NewTeamRepository(client).List(context.Background(), pagination.Query{Page: 2, Search: "arsenal"})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if page.CurrentPage != 2 || page.LastPage != 3 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	got := page.Data[0]
	if got.Name != "Arsenal" || got.ExternalID != "42" || got.Status != refdata.StatusActive {
		t.Fatalf("unexpected team: %+v", got)
	}
	if !page.HasNext() || !page.HasPrev() {
		t.Fatalf("expected both navigation directions")
	}
}

func TestClient_OmitsAuthorizationWithoutSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no authorization header, got %q", got)
		}
		_, _ = io.WriteString(w, `{"data":{"seasons":[]}}`)
	}, sessionstore.NewMemoryStore(session.Session{}), nil)

	seasons, err := NewSeasonRepository(client).List(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected empty seasons, got %d", len(seasons))
	}
}

func TestClient_UnauthorizedBurstNavigatesOnce(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore(session.Session{Token: "expired"})
	var navigations atomic.Int32
	var lastRoute atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	}, store, func(route string) {
		navigations.Add(1)
		lastRoute.Store(route)
	})

	repo := NewCountryRepository(client)
	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.List(context.Background(), pagination.Query{})
			if !errors.Is(err, usecase.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		}()
	}
	wg.Wait()

	if got := navigations.Load(); got != 1 {
		t.Fatalf("expected exactly one navigation, got %d", got)
	}
	if route := lastRoute.Load(); route != "/" {
		t.Fatalf("expected navigation to /, got %v", route)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected session cleared, got %v", err)
	}

	client.Rearm()
	_, _ = repo.List(context.Background(), pagination.Query{})
	if got := navigations.Load(); got != 2 {
		t.Fatalf("expected navigation after rearm, got %d", got)
	}
}

func TestClient_MalformedEnvelope(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{name: "missing key", body: `{"data":{"items":[]}}`},
		{name: "wrong type", body: `{"data":{"teams":"nope"}}`},
		{name: "null list", body: `{"data":{"teams":null}}`},
		{name: "rows exceed per_page", body: `{"data":{"teams":{"data":[{"id":1},{"id":2}],"current_page":1,"last_page":1,"per_page":1,"total":2}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			}, nil, nil)

			_, err := NewTeamRepository(client).List(context.Background(), pagination.Query{})
			if !errors.Is(err, usecase.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestClient_BareArrayBecomesSinglePage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"countries":[{"id":1,"name":"England","status":1},{"id":2,"name":"Spain","status":0}]}}`)
	}, nil, nil)

	page, err := NewCountryRepository(client).List(context.Background(), pagination.Query{})
	if err != nil {
		t.Fatalf("list countries: %v", err)
	}
	if page.LastPage != 1 || page.Total != 2 || page.Data[1].Status != refdata.StatusInactive {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestClient_StatusPatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/admin/leagues/7/status" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]int
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["status"] != 0 {
			t.Errorf("unexpected status payload: %v", body)
		}
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}, nil, nil)

	if err := NewLeagueRepository(client).SetStatus(context.Background(), 7, refdata.StatusInactive); err != nil {
		t.Fatalf("set status: %v", err)
	}
}

func TestAuthenticator_LoginFieldErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"The given data was invalid.","error":{"email":["The email field is required."]}}`)
	}, nil, nil)

	_, err := NewAuthenticator(client).Login(context.Background(), user.Credentials{})
	var fields *usecase.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields.First("email") != "The email field is required." {
		t.Fatalf("unexpected field message: %v", fields.Fields)
	}
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput in chain")
	}
}

func TestAuthenticator_Login(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/admin/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"data":{"token":"tok-1","user":{"id":3,"name":"Admin","email":"admin@starpick.test"}}}`)
	}, nil, nil)

	got, err := NewAuthenticator(client).Login(context.Background(), user.Credentials{Email: "admin@starpick.test", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Token != "tok-1" || got.User.ID != 3 || got.SavedAt.IsZero() {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestMatchRepository_CreateConflict(t *testing.T) {
	t.Parallel()

	var received match.CreateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"conflicting_players":[100],"message":"Player already has a match","match_date":"2026-05-02"}`)
	}, nil, nil)

	req := match.CreateRequest{
		Matches: []match.Entry{{PlayerID: 100, AgainstTeam: 2, FixtureID: 10}},
		Fixture: fixture.Fixture{ID: 10, HomeTeamID: 1, AwayTeamID: 2},
	}
	err := NewMatchRepository(client).Create(context.Background(), req)

	var conflict *match.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(conflict.PlayerIDs) != 1 || conflict.PlayerIDs[0] != 100 || conflict.MatchDate != "2026-05-02" {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}
	if len(received.Matches) != 1 || received.Matches[0].AgainstTeam != 2 || received.Fixture.ID != 10 {
		t.Fatalf("unexpected payload: %+v", received)
	}
}

func TestMatchRepository_CreateConflictNestedUnderData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"data":{"conflicting_players":[100,200],"message":"Taken","match_date":"2026-05-02"}}`)
	}, nil, nil)

	req := match.CreateRequest{
		Matches: []match.Entry{{PlayerID: 100, AgainstTeam: 2, FixtureID: 10}, {PlayerID: 200, AgainstTeam: 1, FixtureID: 10}},
		Fixture: fixture.Fixture{ID: 10, HomeTeamID: 1, AwayTeamID: 2},
	}
	err := NewMatchRepository(client).Create(context.Background(), req)

	var conflict *match.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(conflict.PlayerIDs) != 2 || conflict.PlayerIDs[1] != 200 || conflict.Message != "Taken" {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}
}

func TestMatchRepository_CreateUnstructuredFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `oops`)
	}, nil, nil)

	err := NewMatchRepository(client).Create(context.Background(), match.CreateRequest{})
	var conflict *match.ConflictError
	if errors.As(err, &conflict) {
		t.Fatalf("did not expect conflict error")
	}
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClient_PostBodiesSurviveBufferReuse(t *testing.T) {
	t.Parallel()

	type statusBody struct {
		Status int `json:"status"`
	}
	var (
		mu       sync.Mutex
		received []statusBody
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if r.ContentLength != int64(len(raw)) {
			t.Errorf("content length %d does not match body of %d bytes", r.ContentLength, len(raw))
		}
		var body statusBody
		if err := sonic.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body %q: %v", raw, err)
		}
		mu.Lock()
		received = append(received, body)
		mu.Unlock()
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}, nil, nil)

	for i := 0; i < 4; i++ {
		if _, err := client.patch(context.Background(), "/admin/teams/1/status", statusBody{Status: i % 2}); err != nil {
			t.Fatalf("patch %d: %v", i, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 4 {
		t.Fatalf("expected 4 bodies, got %d", len(received))
	}
	for i, body := range received {
		if body.Status != i%2 {
			t.Fatalf("body %d: got status %d want %d", i, body.Status, i%2)
		}
	}
}
