package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// pcreOnly lists constructs that coregex (RE2 syntax) rejects or interprets
// differently, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookaround assertions
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*nla:", "(*plb:", "(*nlb:",
	"(*positive_lookahead:", "(*negative_lookahead:",
	"(*positive_lookbehind:", "(*negative_lookbehind:",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Backreferences by name
	`\k<`, `\k'`, `\k{`, `(?P=`, `\g`,
	// Escapes RE2 lacks
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`, `\e`, `\o{`, `\x{`,
	// Anchors other than ^ and $
	`\A`, `\Z`, `\G`,
}

// needsPCRE reports whether pattern uses a construct only regexp2 can run.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: \1 ... \9 outside of an escaped backslash.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}

		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go spells named groups (?P<name>...) or (?<name>...), but coregex only
	// understands the former; (?'name'...) is PCRE-only everywhere.
	if strings.Contains(pattern, "(?'") {
		return true
	}
	return strings.Contains(pattern, "(?<") && !strings.Contains(pattern, "(?P<")
}

// groupsToIndexes converts regexp2 groups, which are measured in runes, into
// byte offset pairs using the table built by byteOffsets. Groups without a
// capture become -1, -1.
func groupsToIndexes(offs []int, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		out = append(out, offs[g.Index], offs[g.Index+g.Length])
	}
	return out
}

// byteOffsets maps every rune index of s to its byte offset. The table has
// one extra entry, len(s), for offsets that point past the last rune.
func byteOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}
