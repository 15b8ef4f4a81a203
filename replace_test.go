package xregex

import (
	"strings"
	"testing"
)

func TestReplace(t *testing.T) {
	b := New().Add("a")

	cases := map[string]struct {
		n    int
		want string
	}{
		"first":     {1, "baa"},
		"two":       {2, "bba"},
		"zero":      {0, "bbb"},
		"negative":  {-1, "bbb"},
		"beyondAll": {10, "bbb"},
	}

	for name, tc := range cases {
		got, err := b.Replace("aaa", "b", tc.n)
		if err != nil {
			t.Fatalf("%s: Replace returned error: %v", name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}

func TestReplaceAll(t *testing.T) {
	t.Run("sameLength", func(t *testing.T) {
		got, err := New().Add("a").ReplaceAll("aaa", "b")
		if err != nil {
			t.Fatalf("ReplaceAll returned error: %v", err)
		}
		if got != "bbb" {
			t.Fatalf("got %q, want %q", got, "bbb")
		}
	})

	t.Run("offsetsFromOriginalText", func(t *testing.T) {
		// Each splice uses the match offset in the untouched input, so a
		// longer replacement shifts the following ones.
		got, err := New().Add("a").ReplaceAll("aaa", "xy")
		if err != nil {
			t.Fatalf("ReplaceAll returned error: %v", err)
		}
		if got != "xxxyaa" {
			t.Fatalf("got %q, want %q", got, "xxxyaa")
		}
	})

	t.Run("noMatch", func(t *testing.T) {
		got, err := New().Add(Digit).ReplaceAll("abc", "#")
		if err != nil {
			t.Fatalf("ReplaceAll returned error: %v", err)
		}
		if got != "abc" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("sticky", func(t *testing.T) {
		got, err := New(WithFlags(StickyFlag)).Add("a").ReplaceAll("aaba", "x")
		if err != nil {
			t.Fatalf("ReplaceAll returned error: %v", err)
		}
		if got != "xxba" {
			t.Fatalf("got %q, want %q", got, "xxba")
		}
	})

	t.Run("compileError", func(t *testing.T) {
		if _, err := New().Add("[").ReplaceAll("a", "b"); err == nil {
			t.Fatalf("expected compile error")
		}
	})
}

func TestReplaceFunc(t *testing.T) {
	t.Run("perMatch", func(t *testing.T) {
		b := New().AddRange("a-c")

		got, err := b.ReplaceAllFunc("abcd", func(m *Match) string {
			return strings.ToUpper(m.String())
		})
		if err != nil {
			t.Fatalf("ReplaceAllFunc returned error: %v", err)
		}
		if got != "ABCd" {
			t.Fatalf("got %q, want %q", got, "ABCd")
		}
	})

	t.Run("namedGroups", func(t *testing.T) {
		b := New().
			Open().Add(Digit).End(oneOrMore("d")).
			Add("-").
			Open().Add(Digit).End(oneOrMore("m"))

		var seen []string
		got, err := b.ReplaceFunc("07-12 08-11", func(m *Match) string {
			d, _ := m.Group("d")
			mo, _ := m.Group("m")
			seen = append(seen, m.String())
			return mo + "/" + d
		}, 1)
		if err != nil {
			t.Fatalf("ReplaceFunc returned error: %v", err)
		}
		if got != "12/07 08-11" {
			t.Fatalf("got %q, want %q", got, "12/07 08-11")
		}
		if len(seen) != 1 || seen[0] != "07-12" {
			t.Fatalf("expected one callback for %q, got %q", "07-12", seen)
		}
	})
}

func TestSplice(t *testing.T) {
	cases := map[string]struct {
		s      string
		at     int
		length int
		repl   string
		want   string
	}{
		"middle":      {"abc", 1, 1, "X", "aXc"},
		"insert":      {"abc", 1, 0, "X", "aXbc"},
		"pastEnd":     {"ab", 5, 1, "X", "abX"},
		"overlapsEnd": {"abc", 2, 4, "X", "abX"},
	}

	for name, tc := range cases {
		if got := splice(tc.s, tc.at, tc.length, tc.repl); got != tc.want {
			t.Fatalf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}
