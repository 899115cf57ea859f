package mode

import (
	"errors"
	"slices"
	"testing"
)

func TestToggleStartsLight(t *testing.T) {
	toggle := New()
	if got := toggle.CurrentLabel(); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
	if got := toggle.NextLabel(); got != "dark" {
		t.Fatalf("expected next label dark, got %q", got)
	}

	var zero Toggle
	if got := zero.CurrentLabel(); got != "light" {
		t.Fatalf("expected zero toggle to be light, got %q", got)
	}
}

func TestToggleFromLight(t *testing.T) {
	toggle := New()

	previous, next := toggle.Toggle()
	if previous != "light" || next != "dark" {
		t.Fatalf("expected light -> dark, got %s -> %s", previous, next)
	}
	if got := toggle.CurrentLabel(); got != "dark" {
		t.Fatalf("expected dark, got %q", got)
	}
	if toggle.Current() != Dark {
		t.Fatalf("expected Current to be Dark")
	}
}

func TestToggleFromDark(t *testing.T) {
	toggle := New()
	toggle.Toggle()

	previous, next := toggle.Toggle()
	if previous != "dark" || next != "light" {
		t.Fatalf("expected dark -> light, got %s -> %s", previous, next)
	}
	if got := toggle.CurrentLabel(); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	for _, start := range []int{0, 1} {
		toggle := New()
		for i := 0; i < start; i++ {
			toggle.Toggle()
		}
		before := toggle.CurrentLabel()
		toggle.Toggle()
		toggle.Toggle()
		if got := toggle.CurrentLabel(); got != before {
			t.Errorf("start %d: expected %q after two toggles, got %q", start, before, got)
		}
	}
}

func TestNextLabelPredictsToggle(t *testing.T) {
	toggle := New()
	for i := 0; i < 10; i++ {
		want := toggle.NextLabel()
		_, next := toggle.Toggle()
		if next != want {
			t.Fatalf("toggle %d: NextLabel said %q, Toggle returned %q", i, want, next)
		}
		if !slices.Contains(Modes(), toggle.CurrentLabel()) {
			t.Fatalf("toggle %d: unknown label %q", i, toggle.CurrentLabel())
		}
	}
}

func TestToggleParity(t *testing.T) {
	for n := 0; n <= 9; n++ {
		toggle := New()
		for i := 0; i < n; i++ {
			toggle.Toggle()
		}
		want := "light"
		if n%2 == 1 {
			want = "dark"
		}
		if got := toggle.CurrentLabel(); got != want {
			t.Errorf("n=%d: expected %q, got %q", n, want, got)
		}
	}
}

func TestModesIsFixed(t *testing.T) {
	labels := Modes()
	labels[0] = "mutated"
	if got := Modes(); !slices.Equal(got, []string{"light", "dark"}) {
		t.Fatalf("expected [light dark], got %v", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		err   bool
	}{
		{input: "light", want: Light},
		{input: " Dark ", want: Dark},
		{input: "sepia", err: true},
		{input: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.err {
				if !errors.Is(err, ErrInvalidMode) {
					t.Fatalf("expected ErrInvalidMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
