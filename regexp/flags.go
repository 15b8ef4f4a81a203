package regexp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrInvalidFlags indicates that a flag string contained an unknown or a
// repeated flag token.
var ErrInvalidFlags = errors.New("invalid regular expression flags")

// Flags is the parsed form of a flag string.
type Flags struct {
	Global     bool // g
	IgnoreCase bool // i
	Multiline  bool // m
	DotAll     bool // s
	Unicode    bool // u
	Sticky     bool // y
}

// ParseFlags parses a flag string such as "gis". Every token may appear at
// most once.
func ParseFlags(s string) (Flags, error) {
	var f Flags

	for _, c := range s {
		var field *bool
		switch c {
		case 'g':
			field = &f.Global
		case 'i':
			field = &f.IgnoreCase
		case 'm':
			field = &f.Multiline
		case 's':
			field = &f.DotAll
		case 'u':
			field = &f.Unicode
		case 'y':
			field = &f.Sticky
		default:
			return Flags{}, fmt.Errorf("%w: unknown flag %q in %q", ErrInvalidFlags, c, s)
		}

		if *field {
			return Flags{}, fmt.Errorf("%w: duplicate flag %q in %q", ErrInvalidFlags, c, s)
		}
		*field = true
	}

	return f, nil
}

// String returns the flags in canonical "gimsuy" order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, v := range []struct {
		set bool
		c   byte
	}{
		{f.Global, 'g'},
		{f.IgnoreCase, 'i'},
		{f.Multiline, 'm'},
		{f.DotAll, 's'},
		{f.Unicode, 'u'},
		{f.Sticky, 'y'},
	} {
		if v.set {
			sb.WriteByte(v.c)
		}
	}

	return sb.String()
}

// inline returns the RE2 inline flag group for the flags that change
// matching, e.g. "(?is)". It is empty when none apply.
func (f Flags) inline() string {
	var sb strings.Builder
	if f.IgnoreCase {
		sb.WriteByte('i')
	}
	if f.Multiline {
		sb.WriteByte('m')
	}
	if f.DotAll {
		sb.WriteByte('s')
	}

	if sb.Len() == 0 {
		return ""
	}

	return "(?" + sb.String() + ")"
}

// pcreOptions always includes regexp2.RE2 so that \d, \w, \s and $ behave
// as they do on coregex: ASCII classes, and $ only at the very end.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	var opts regexp2.RegexOptions = regexp2.RE2
	if f.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opts |= regexp2.Multiline
	}
	if f.DotAll {
		opts |= regexp2.Singleline
	}
	if f.Unicode {
		opts |= regexp2.Unicode
	}

	return opts
}
