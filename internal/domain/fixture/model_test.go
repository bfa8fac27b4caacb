package fixture

import (
	"testing"
	"time"
)

func TestKickoff_PrefersTimestamp(t *testing.T) {
	t.Parallel()

	f := Fixture{ID: 1, Timestamp: 1767225600, Date: "1999-01-01"}
	got, err := f.Kickoff()
	if err != nil {
		t.Fatalf("kickoff: %v", err)
	}
	if got.Year() != 2026 {
		t.Fatalf("expected timestamp to win, got %s", got)
	}
}

func TestKickoff_FallsBackToDate(t *testing.T) {
	t.Parallel()

	f := Fixture{ID: 2, Date: "2026-08-15 14:00:00"}
	got, err := f.Kickoff()
	if err != nil {
		t.Fatalf("kickoff: %v", err)
	}
	want := time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}

	if _, err := (Fixture{ID: 3, Date: "soon"}).Kickoff(); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	fixtures := []Fixture{
		{ID: 1, Date: "2026-04-30"},
		{ID: 2, Date: "2026-05-02"},
		{ID: 3, Date: "bad"},
		{ID: 4, Timestamp: now.Unix()},
	}

	got := Upcoming(fixtures, now)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 4 {
		t.Fatalf("unexpected upcoming fixtures: %+v", got)
	}
}

func TestUpcoming_DateOnlyFixtureStaysListedForItsDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	fixtures := []Fixture{
		{ID: 10, Date: "2026-10-16"},
		{ID: 11, Date: "2026-10-16 20:00:00"},
		{ID: 12, Date: "2026-10-16 08:00:00"},
		{ID: 13, Date: "2026-10-15"},
	}

	got := Upcoming(fixtures, now)
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("expected fixtures 10 and 11, got %+v", got)
	}

	kickoff, err := fixtures[0].Kickoff()
	if err != nil {
		t.Fatalf("kickoff: %v", err)
	}
	if want := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC); !kickoff.Equal(want) {
		t.Fatalf("got %s want %s", kickoff, want)
	}
}
