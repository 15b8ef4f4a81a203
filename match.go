package xregex

import (
	"strconv"

	"go.dw1.io/xregex/json"
	"go.dw1.io/xregex/regexp"
)

// Match is the result of Exec: the first match of the pattern in Input.
type Match struct {
	// Index is the byte offset of the match in Input.
	Index int
	Input string

	// Groups holds the whole match followed by every capture group. Groups
	// that did not participate are empty.
	Groups []string

	// Names maps group names to their captured text.
	Names map[string]string
}

func newMatch(input string, idx []int, names []string) *Match {
	m := &Match{
		Index:  idx[0],
		Input:  input,
		Groups: make([]string, len(idx)/2),
	}

	for i := range m.Groups {
		if idx[2*i] >= 0 {
			m.Groups[i] = input[idx[2*i]:idx[2*i+1]]
		}
	}

	for i, name := range names {
		if name == "" || i >= len(m.Groups) {
			continue
		}
		if m.Names == nil {
			m.Names = make(map[string]string)
		}
		m.Names[name] = m.Groups[i]
	}

	return m
}

// String returns the matched text.
func (m *Match) String() string {
	return m.Groups[0]
}

// Group returns the text captured by the named group.
func (m *Match) Group(name string) (string, bool) {
	s, ok := m.Names[name]
	return s, ok
}

// MarshalJSON encodes the match the way a JavaScript exec result looks:
// numbered groups as keys, plus index, input and named groups.
func (m *Match) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(m.Groups)+3)
	for i, g := range m.Groups {
		doc[strconv.Itoa(i)] = g
	}
	doc["index"] = m.Index
	doc["input"] = m.Input
	if m.Names != nil {
		doc["groups"] = m.Names
	} else {
		doc["groups"] = nil
	}

	return json.Marshal(doc)
}

// Test reports whether the pattern matches anywhere in text. With StickyFlag
// the match must start at the beginning of text.
func (b *Builder) Test(text string) (bool, error) {
	re, err := b.Regexp()
	if err != nil {
		return false, err
	}

	if !re.Flags().Sticky {
		return re.MatchString(text), nil
	}

	idx := re.FindStringIndex(text)
	return idx != nil && idx[0] == 0, nil
}

// Exec returns the first match of the pattern in text, or nil if there is
// none. With StickyFlag the match must start at the beginning of text.
func (b *Builder) Exec(text string) (*Match, error) {
	re, err := b.Regexp()
	if err != nil {
		return nil, err
	}

	idx := re.FindStringSubmatchIndex(text)
	if idx == nil || re.Flags().Sticky && idx[0] != 0 {
		return nil, nil
	}

	return newMatch(text, idx, re.SubexpNames()), nil
}

// Split divides text at each match of the pattern. Captured groups of each
// separator are spliced into the result, and an empty match right where the
// previous piece ended does not split.
func (b *Builder) Split(text string) ([]string, error) {
	re, err := b.Regexp()
	if err != nil {
		return nil, err
	}

	return split(re, text), nil
}

func split(re *regexp.Regexp, text string) []string {
	if text == "" {
		if re.MatchString("") {
			return []string{}
		}
		return []string{""}
	}

	out := make([]string, 0)
	last := 0
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		if idx[0] >= len(text) {
			break
		}
		if idx[1] == last {
			continue
		}

		out = append(out, text[last:idx[0]])
		for i := 2; i+1 < len(idx); i += 2 {
			if idx[i] < 0 {
				out = append(out, "")
				continue
			}
			out = append(out, text[idx[i]:idx[i+1]])
		}
		last = idx[1]
	}

	return append(out, text[last:])
}
