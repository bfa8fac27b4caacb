package season

import "testing"

func TestCurrent(t *testing.T) {
	t.Parallel()

	if _, ok := Current(nil); ok {
		t.Fatalf("expected no current season for empty list")
	}

	seasons := []Season{{ID: 1, Year: "23/24"}, {ID: 2, Year: "24/25", IsCurrent: 1}}
	if got, _ := Current(seasons); got.ID != 2 {
		t.Fatalf("expected flagged season, got %d", got.ID)
	}

	seasons[1].IsCurrent = 0
	if got, _ := Current(seasons); got.ID != 1 {
		t.Fatalf("expected first season as fallback, got %d", got.ID)
	}
}
