package xregex

import (
	"errors"
	"testing"
)

func TestBlockRender(t *testing.T) {
	t.Run("concatenates", func(t *testing.T) {
		b := NewBlock(Start).Add(WordChar).AddRange("a-f").AddEscapedChar(".")

		got, err := b.Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `^\w[a-f]\.`; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("quantifyThenGroup", func(t *testing.T) {
		b := NewBlock(Digit)
		b.GroupName = "num"
		b.Repeat = &RepeatSpec{OneOrMore: true}

		got, err := b.Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `(?<num>\d+)`; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("assertions", func(t *testing.T) {
		b := NewBlock().
			AddLookBehind("a").
			AddNegativeLookBehind("b").
			AddNonMatchGroup("c").
			AddLookAhead("d").
			AddNegativeLookAhead("e").
			AddNamedGroupBackReference("f")

		if want := `(?<=a)(?<!b)(?:c)(?=d)(?!e)\k<f>`; b.String() != want {
			t.Fatalf("got %q, want %q", b.String(), want)
		}
	})

	t.Run("pure", func(t *testing.T) {
		b := NewBlock("a", "b")
		b.Repeat = &RepeatSpec{ZeroOrMore: true}

		first, _ := b.Render()
		second, _ := b.Render()
		if first != second || first != "ab*" {
			t.Fatalf("renders differ: %q, %q", first, second)
		}
		if b.Len() != 2 {
			t.Fatalf("expected 2 fragments after rendering, got %d", b.Len())
		}
	})

	t.Run("unconfiguredRepeat", func(t *testing.T) {
		b := NewBlock("a", "b")
		b.GroupName = "g"
		b.Repeat = &RepeatSpec{}

		if _, err := b.Render(); !errors.Is(err, ErrUnconfiguredRepeat) {
			t.Fatalf("expected ErrUnconfiguredRepeat, got %v", err)
		}
		if got := b.String(); got != "(?<g>ab)" {
			t.Fatalf("String: got %q", got)
		}
	})
}

func TestBlockFragmentsIsCopy(t *testing.T) {
	b := NewBlock("a")

	frags := b.Fragments()
	frags[0] = "z"

	if b.String() != "a" {
		t.Fatalf("Fragments shares storage with the block")
	}
}
