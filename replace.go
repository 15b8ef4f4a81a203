package xregex

// Replace replaces up to n matches of the pattern in text with the literal
// replacement. n <= 0 replaces every match.
//
// Matches are searched in the original text while the replacements are
// spliced into the output at the original offsets. When a replacement differs
// in length from what it replaces, later splices land at shifted positions.
func (b *Builder) Replace(text, replacement string, n int) (string, error) {
	return b.ReplaceFunc(text, func(*Match) string { return replacement }, n)
}

// ReplaceFunc is like Replace, but the replacement for each match is
// computed by fn.
func (b *Builder) ReplaceFunc(text string, fn func(*Match) string, n int) (string, error) {
	re, err := b.Regexp()
	if err != nil {
		return "", err
	}

	limit := -1
	if n > 0 {
		limit = n
	}

	names := re.SubexpNames()
	sticky := re.Flags().Sticky
	out := text
	next := 0
	for _, idx := range re.FindAllStringSubmatchIndex(text, limit) {
		// A sticky pattern only continues where the previous match ended.
		if sticky && idx[0] != next {
			break
		}
		next = idx[1]

		out = splice(out, idx[0], idx[1]-idx[0], fn(newMatch(text, idx, names)))
	}

	return out, nil
}

// ReplaceAll replaces every match of the pattern in text.
func (b *Builder) ReplaceAll(text, replacement string) (string, error) {
	return b.Replace(text, replacement, -1)
}

// ReplaceAllFunc replaces every match of the pattern in text with the
// result of fn.
func (b *Builder) ReplaceAllFunc(text string, fn func(*Match) string) (string, error) {
	return b.ReplaceFunc(text, fn, -1)
}

// splice replaces length bytes of s at offset at with repl, clamping both
// bounds to s.
func splice(s string, at, length int, repl string) string {
	head := min(at, len(s))
	tail := min(at+length, len(s))
	return s[:head] + repl + s[tail:]
}
