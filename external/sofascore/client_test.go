package sofascore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/platform/resilience"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		CacheTTL:       time.Minute,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClientCategories_SendsBrowserHeadersAndCaches(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/sport/football/categories" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Referer") != "https://www.sofascore.com/" {
			t.Errorf("missing referer header")
		}
		if r.Header.Get("User-Agent") == "" || r.Header.Get("Accept-Language") == "" {
			t.Errorf("missing browser headers")
		}
		_, _ = io.WriteString(w, `{"categories":[{"id":1,"name":"England","slug":"england","alpha2":"EN"},{"id":32,"name":"Spain","slug":"spain"}]}`)
	}, resilience.CircuitBreakerConfig{Enabled: false})

	for i := 0; i < 3; i++ {
		got, err := client.Categories(context.Background())
		if err != nil {
			t.Fatalf("categories: %v", err)
		}
		if len(got) != 2 || got[0].Name != "England" || got[1].ID != 32 {
			t.Fatalf("unexpected categories: %+v", got)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected cached categories, provider hit %d times", calls.Load())
	}

	client.Invalidate("/sport/")
	if _, err := client.Categories(context.Background()); err != nil {
		t.Fatalf("categories after invalidate: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected reload after invalidate, got %d calls", calls.Load())
	}
}

func TestClientRounds(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/unique-tournament/17/season/61627/rounds" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"currentRound":{"round":12},"rounds":[{"round":11},{"round":12},{"round":13}]}`)
	}, resilience.CircuitBreakerConfig{Enabled: false})

	set, err := client.Rounds(context.Background(), "17", "61627")
	if err != nil {
		t.Fatalf("rounds: %v", err)
	}
	if set.CurrentRound.Round != 12 || len(set.Rounds) != 3 {
		t.Fatalf("unexpected rounds: %+v", set)
	}
}

func TestClientRounds_RejectsInconsistentPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"currentRound":{"round":40},"rounds":[{"round":1}]}`)
	}, resilience.CircuitBreakerConfig{Enabled: false})

	if _, err := client.Rounds(context.Background(), "17", "1"); !errors.Is(err, usecase.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClientTournaments_FlattensGroups(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"groups":[{"uniqueTournaments":[{"id":17,"name":"Premier League"},{"id":18,"name":"Championship"}]},{"uniqueTournaments":[{"id":17,"name":"Premier League"}]}]}`)
	}, resilience.CircuitBreakerConfig{Enabled: false})

	got, err := client.Tournaments(context.Background(), 1)
	if err != nil {
		t.Fatalf("tournaments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected de-duplicated tournaments, got %+v", got)
	}
}

func TestClient_CircuitBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 2; i++ {
		if _, err := client.Seasons(context.Background(), "17"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}
	if _, err := client.Seasons(context.Background(), "17"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected rejection while open, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("open breaker must not reach provider, got %d calls", calls.Load())
	}
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 3; i++ {
		if _, err := client.Seasons(context.Background(), "999"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}
	if state := client.breaker.State(); state != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}
}

func TestClient_ServerErrorIsSingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, resilience.CircuitBreakerConfig{Enabled: false})

	started := time.Now()
	_, err := client.Categories(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
	if elapsed := time.Since(started); elapsed > 500*time.Millisecond {
		t.Fatalf("failure must return without waiting, took %s", elapsed)
	}
}
