package xregex

import "strings"

// Block is an ordered sequence of fragments. When rendered, the fragments are
// concatenated, quantified by Repeat if set and then wrapped in a capture
// group named GroupName if set.
type Block struct {
	content   []string
	GroupName string
	Repeat    *RepeatSpec
}

// NewBlock returns a block holding fragments in order.
func NewBlock(fragments ...string) *Block {
	return &Block{content: append([]string(nil), fragments...)}
}

// Add appends a fragment as is.
func (b *Block) Add(fragment string) *Block {
	b.content = append(b.content, fragment)
	return b
}

// AddEscapedChar appends EscapedChar(char).
func (b *Block) AddEscapedChar(char string) *Block {
	return b.Add(EscapedChar(char))
}

// AddNonMatchGroup appends NonMatchGroup(content).
func (b *Block) AddNonMatchGroup(content string) *Block {
	return b.Add(NonMatchGroup(content))
}

// AddLookAhead appends LookAhead(content).
func (b *Block) AddLookAhead(content string) *Block {
	return b.Add(LookAhead(content))
}

// AddNegativeLookAhead appends NegativeLookAhead(content).
func (b *Block) AddNegativeLookAhead(content string) *Block {
	return b.Add(NegativeLookAhead(content))
}

// AddLookBehind appends LookBehind(content).
func (b *Block) AddLookBehind(content string) *Block {
	return b.Add(LookBehind(content))
}

// AddNegativeLookBehind appends NegativeLookBehind(content).
func (b *Block) AddNegativeLookBehind(content string) *Block {
	return b.Add(NegativeLookBehind(content))
}

// AddNamedGroupBackReference appends NamedGroupBackReference(name).
func (b *Block) AddNamedGroupBackReference(name string) *Block {
	return b.Add(NamedGroupBackReference(name))
}

// AddRange appends Range(chars...).
func (b *Block) AddRange(chars ...string) *Block {
	return b.Add(Range(chars...))
}

// Fragments returns a copy of the block content.
func (b *Block) Fragments() []string {
	return append([]string(nil), b.content...)
}

// Len returns the number of fragments in the block.
func (b *Block) Len() int {
	return len(b.content)
}

// Render returns the pattern text of the block. It fails with
// ErrUnconfiguredRepeat if Repeat is set but has no mode. Render never
// modifies the block.
func (b *Block) Render() (string, error) {
	s := strings.Join(b.content, "")

	if b.Repeat != nil {
		var err error
		if s, err = Repeat(s, *b.Repeat); err != nil {
			return "", err
		}
	}

	if b.GroupName != "" {
		s = NamedGroup(b.GroupName, s)
	}

	return s, nil
}

// String is like Render but leaves out an unconfigured quantifier.
func (b *Block) String() string {
	s, err := b.Render()
	if err != nil {
		unquantified := *b
		unquantified.Repeat = nil
		s, _ = unquantified.Render()
	}
	return s
}
