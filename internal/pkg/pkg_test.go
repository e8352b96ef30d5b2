package pkg

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestParseULID(t *testing.T) {
	t.Parallel()

	id := GenerateULIDObject()
	parsed, err := ParseULID(id.String())
	if err != nil || parsed != id {
		t.Fatalf("expected round trip, got %v %v", parsed, err)
	}

	if _, err := ParseULID(""); err != ErrEmptyULID {
		t.Fatalf("expected ErrEmptyULID, got %v", err)
	}
	if _, err := ParseULID("not-a-ulid"); err != ErrInvalidULID {
		t.Fatalf("expected ErrInvalidULID, got %v", err)
	}

	empty := ""
	ptr, err := ParseULIDPtr(&empty)
	if err != nil || ptr != nil {
		t.Fatalf("empty pointer value must parse to nil")
	}
}

func TestDeterministicULIDIsStable(t *testing.T) {
	t.Parallel()

	a := DeterministicULID("project_status", "Concluído")
	b := DeterministicULID("project_status", "Concluído")
	c := DeterministicULID("project_status", "Cancelado")

	if a != b {
		t.Fatalf("expected same id for same key")
	}
	if a == c {
		t.Fatalf("expected different ids for different keys")
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("timezone database not available")
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day different hours", time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), 0},
		{"future", time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), 3},
		{"past", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), -5},
		{"across months", time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 30},
		{"local calendar day wins", time.Date(2025, 3, 10, 22, 0, 0, 0, sp), time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"centuries in the past", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC), -118504},
		{"far future", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), 2913007},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2025-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.February || d.Day() != 28 {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("28/02/2025"); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestNewPaginationFromQuery(t *testing.T) {
	t.Parallel()

	p := NewPaginationFromQuery("0", "500")
	if p.Page != 1 || p.Limit != MaxPageLimit {
		t.Fatalf("unexpected normalization: %+v", p)
	}

	p = NewPaginationFromQuery("3", "abc")
	if p.Page != 3 || p.Limit != DefaultPageLimit || p.Offset() != 40 {
		t.Fatalf("unexpected pagination: %+v offset=%d", p, p.Offset())
	}

	resp := NewPaginatedResponse([]int(nil), &PaginationParams{Page: 1, Limit: 10}, 21)
	if resp.TotalPages != 3 || resp.Data == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFormatBRL(t *testing.T) {
	t.Parallel()

	got := FormatBRL(500)
	if !strings.HasPrefix(got, "R$ ") || !strings.Contains(got, "500") {
		t.Fatalf("unexpected format: %q", got)
	}
	if neg := FormatBRL(-10); !strings.HasPrefix(neg, "-R$ ") {
		t.Fatalf("unexpected negative format: %q", neg)
	}
	if nan := FormatBRL(math.NaN()); !strings.HasPrefix(nan, "R$ ") {
		t.Fatalf("NaN must be formatted as zero, got %q", nan)
	}
}
