package regexp

import (
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
//
// All indexes returned by a Regexp are byte offsets into the input, whichever
// engine ran the match.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression without flags.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, "")
}

// CompileFlags parses a regular expression together with a flag string.
// Patterns that require PCRE/Perl-only features (detected by needsPCRE) are
// compiled with regexp2; everything else uses coregex for speed.
func CompileFlags(pattern, flags string, opts ...Option) (*Regexp, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.forcePCRE || needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, f.pcreOptions())
		if err != nil {
			return nil, err
		}
		if cfg.matchTimeout > 0 {
			re.MatchTimeout = cfg.matchTimeout
		}

		return &Regexp{pattern: pattern, flags: f, pcre: re}, nil
	}

	re, err := coregex.Compile(f.inline() + pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: f, core: re}, nil
}

// QuoteMeta escapes all regular expression metacharacters in s. The result
// is a literal on both engines.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp, without the
// flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// IsPCRE reports whether the Regexp runs on the regexp2 engine.
func (r *Regexp) IsPCRE() bool {
	return r.pcre != nil
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	offs := byteOffsets(s)
	return []int{offs[m.Index], offs[m.Index+m.Length]}
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches. Groups that did not take part
// in the match are reported as -1, -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(byteOffsets(s), m.Groups())
}

// FindAllStringSubmatchIndex returns a slice of all successive match index
// pairs of the Regexp in s and their submatches. If n >= 0, at most n
// matches are returned.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringSubmatchIndex(s, n)
	}

	var (
		matches [][]int
		offs    []int
	)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		if offs == nil {
			offs = byteOffsets(s)
		}

		matches = append(matches, groupsToIndexes(offs, m.Groups()))
		m, err = r.pcre.FindNextMatch(m)
	}

	return matches
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// have an empty name.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}

	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		// regexp2 names unnamed groups after their number.
		if name := r.pcre.GroupNameFromNumber(i); name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}
