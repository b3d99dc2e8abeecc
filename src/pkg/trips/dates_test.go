package trips

import (
	"testing"
	"time"
)

func mustResolve(t *testing.T, resolver Resolver, raw string) time.Time {
	t.Helper()
	resolved, ok := resolver.Resolve(raw)
	if !ok {
		t.Fatalf("expected %q to resolve", raw)
	}
	return resolved
}

func TestResolveISO(t *testing.T) {
	resolver := NewResolver(2025)

	got := mustResolve(t, resolver, "2025-12-01")
	want := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveSlash(t *testing.T) {
	resolver := NewResolver(2025)

	got := mustResolve(t, resolver, "01/12/2025")
	want := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Yearless form borrows the reference year.
	got = mustResolve(t, resolver, "05/11")
	want = time.Date(2025, time.November, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolvePortugueseMonth(t *testing.T) {
	resolver := NewResolver(2025)

	got := mustResolve(t, resolver, "01 dez")
	want := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Full month names still match on their first three letters.
	got = mustResolve(t, resolver, "15 Agosto")
	want = time.Date(2025, time.August, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveRejectsGarbage(t *testing.T) {
	resolver := NewResolver(2025)

	for _, raw := range []string{
		"garbage",
		"",
		"   ",
		"99/99/2025",
		"32/01/2025",
		"2025-02-30",
		"01 xyz",
		"xx dez",
		"2025-13-01",
	} {
		if _, ok := resolver.Resolve(raw); ok {
			t.Fatalf("expected %q to be unparseable", raw)
		}
	}
}

func TestResolveIsIdempotentThroughCanonicalForm(t *testing.T) {
	resolver := NewResolver(2025)

	first := mustResolve(t, resolver, "01 dez")
	second := mustResolve(t, resolver, first.Format("2006-01-02"))
	if !first.Equal(second) {
		t.Fatalf("round trip changed the date: %v vs %v", first, second)
	}
}

func TestNewResolverDefaultsToCurrentYear(t *testing.T) {
	resolver := NewResolver(0)
	if resolver.ReferenceYear != time.Now().Year() {
		t.Fatalf("expected current year, got %d", resolver.ReferenceYear)
	}
}
