package dates

import (
	"testing"
	"time"
)

func TestRollForward(t *testing.T) {
	base := wednesday
	tests := []struct {
		name string
		text string
		in   time.Time
		want time.Time
	}{
		{"weekday in past", "monday", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"weekday already future", "friday", time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)},
		{"explicit past", "last monday", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
		{"month day in past", "march 3", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"explicit year", "march 3 2024", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"same day", "today", base, base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rollForward(tt.text, tt.in, base); !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want.Format(ISOLayout), got.Format(ISOLayout))
			}
		})
	}
}

func TestWhenResolver_Tomorrow(t *testing.T) {
	r := NewWhenResolver()
	got, ok := r.Resolve("tomorrow", Policy{PreferFuture: true, Base: wednesday})
	if !ok {
		t.Fatal("expected tomorrow to resolve")
	}
	if got.Format(ISOLayout) != "2024-06-06" {
		t.Errorf("expected %q, got %q", "2024-06-06", got.Format(ISOLayout))
	}
}

func TestWhenResolver_Unresolvable(t *testing.T) {
	r := NewWhenResolver()
	for _, text := range []string{"", "   ", "when the stars align"} {
		if _, ok := r.Resolve(text, Policy{Base: wednesday}); ok {
			t.Errorf("expected %q not to resolve", text)
		}
	}
}

func TestResolverFunc(t *testing.T) {
	var f Resolver = ResolverFunc(func(text string, p Policy) (time.Time, bool) {
		return p.Base, text == "now"
	})
	if _, ok := f.Resolve("now", Policy{Base: wednesday}); !ok {
		t.Error("expected ResolverFunc to delegate")
	}
}
