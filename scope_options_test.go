package xregex

import (
	"errors"
	"testing"
)

func TestParseScopeOptions(t *testing.T) {
	t.Run("groupAndRepeat", func(t *testing.T) {
		opts, err := ParseScopeOptions([]byte(`{"groupName":"num","repeat":{"oneOrMore":true}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.GroupName != "num" || opts.Repeat == nil || !opts.Repeat.OneOrMore {
			t.Fatalf("got %+v", opts)
		}

		b := New().Open().Add(Digit).End(opts)
		if got := mustSource(t, b); got != `(?<num>\d+)` {
			t.Fatalf("Source: got %q", got)
		}
	})

	t.Run("truthiness", func(t *testing.T) {
		opts, err := ParseScopeOptions([]byte(`{"groupName":0,"repeat":{"oneOrMore":1,"lazy":"yes","zeroOrMore":"","precise":0}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := RepeatSpec{OneOrMore: true, Lazy: true}
		if opts.GroupName != "" || opts.Repeat == nil || *opts.Repeat != want {
			t.Fatalf("got %+v", opts)
		}
	})

	t.Run("counts", func(t *testing.T) {
		opts, err := ParseScopeOptions([]byte(`{"repeat":{"min":2,"max":"4","lazy":true}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := RepeatSpec{Min: 2, Max: 4, Lazy: true}
		if opts.Repeat == nil || *opts.Repeat != want {
			t.Fatalf("got %+v", opts.Repeat)
		}
	})

	t.Run("null", func(t *testing.T) {
		opts, err := ParseScopeOptions([]byte(`null`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.GroupName != "" || opts.Repeat != nil {
			t.Fatalf("got %+v", opts)
		}
	})

	t.Run("emptyRepeat", func(t *testing.T) {
		opts, err := ParseScopeOptions([]byte(`{"repeat":{}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b := New().Open().Add("a")
		if err := b.Close(opts); !errors.Is(err, ErrUnconfiguredRepeat) {
			t.Fatalf("expected ErrUnconfiguredRepeat, got %v", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"notJSON":       `not json`,
			"array":         `[1]`,
			"groupNameType": `{"groupName":5}`,
			"repeatType":    `{"repeat":[]}`,
			"negativeMin":   `{"repeat":{"min":-1}}`,
			"fraction":      `{"repeat":{"precise":1.5}}`,
			"boolCount":     `{"repeat":{"max":true}}`,
		}

		for name, doc := range cases {
			if _, err := ParseScopeOptions([]byte(doc)); !errors.Is(err, ErrInvalidScopeOptions) {
				t.Fatalf("%s: expected ErrInvalidScopeOptions, got %v", name, err)
			}
		}
	})
}
