package xregex

import (
	"strings"

	"go.dw1.io/xregex/regexp"
)

// Builder composes a pattern from nested scopes of fragments and keeps the
// flags it is compiled with.
//
// The zero value is ready to use and has no flags; New adds the default
// flags. A Builder is not safe for concurrent use.
type Builder struct {
	cfg   config
	flags []string

	// blocks is the top-level sequence that gets compiled; blocks[0] is top.
	blocks []*Block
	stack  []*Block
	top    *Block

	err error
}

// New returns a Builder with the default flags (IgnoreCaseFlag and
// DotAllFlag) unless overridden by opts.
func New(opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	top := &Block{}
	return &Builder{
		cfg:    cfg,
		flags:  append([]string(nil), cfg.flags...),
		blocks: []*Block{top},
		top:    top,
	}
}

// current returns the innermost open scope, or the top-level block.
func (b *Builder) current() *Block {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1]
	}
	return b.topBlock()
}

// topBlock returns the top-level block, creating it in front of any appended
// blocks on a zero Builder.
func (b *Builder) topBlock() *Block {
	if b.top == nil {
		b.top = &Block{}
		b.blocks = append([]*Block{b.top}, b.blocks...)
	}
	return b.top
}

// Open starts a nested scope. Fragments added until the matching Close go
// into it.
func (b *Builder) Open() *Builder {
	b.stack = append(b.stack, &Block{})
	return b
}

// Depth returns the number of open scopes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Add appends a fragment to the current scope as is. The fragment is not
// validated; malformed syntax surfaces when the pattern is compiled.
func (b *Builder) Add(fragment string) *Builder {
	b.current().Add(fragment)
	return b
}

// AddLiteral appends text with every metacharacter escaped, so it matches
// itself.
func (b *Builder) AddLiteral(text string) *Builder {
	return b.Add(regexp.QuoteMeta(text))
}

// AddEscapedChar appends EscapedChar(char).
func (b *Builder) AddEscapedChar(char string) *Builder {
	return b.Add(EscapedChar(char))
}

// AddNonMatchGroup appends NonMatchGroup(content).
func (b *Builder) AddNonMatchGroup(content string) *Builder {
	return b.Add(NonMatchGroup(content))
}

// AddLookAhead appends LookAhead(content).
func (b *Builder) AddLookAhead(content string) *Builder {
	return b.Add(LookAhead(content))
}

// AddNegativeLookAhead appends NegativeLookAhead(content).
func (b *Builder) AddNegativeLookAhead(content string) *Builder {
	return b.Add(NegativeLookAhead(content))
}

// AddLookBehind appends LookBehind(content).
func (b *Builder) AddLookBehind(content string) *Builder {
	return b.Add(LookBehind(content))
}

// AddNegativeLookBehind appends NegativeLookBehind(content).
func (b *Builder) AddNegativeLookBehind(content string) *Builder {
	return b.Add(NegativeLookBehind(content))
}

// AddNamedGroupBackReference appends NamedGroupBackReference(name).
func (b *Builder) AddNamedGroupBackReference(name string) *Builder {
	return b.Add(NamedGroupBackReference(name))
}

// AddRange appends Range(chars...).
func (b *Builder) AddRange(chars ...string) *Builder {
	return b.Add(Range(chars...))
}

// Close ends the innermost scope. The scope is rendered with the group name
// and quantifier from opts (only the last value is used) and appended to the
// enclosing scope, or to the top-level block when no scope encloses it.
//
// Close fails with ErrNoOpenScope when no scope is open, with
// ErrUnconfiguredRepeat when opts carries an empty RepeatSpec and with
// ErrNoCurrentScope when there is nothing to receive the rendering. The
// Builder is left unchanged on failure.
func (b *Builder) Close(opts ...ScopeOptions) error {
	n := len(b.stack)
	if n == 0 {
		return ErrNoOpenScope
	}

	block := *b.stack[n-1]
	block.GroupName, block.Repeat = "", nil
	if len(opts) > 0 {
		opt := opts[len(opts)-1]
		block.GroupName, block.Repeat = opt.GroupName, opt.Repeat
	}

	rendered, err := block.Render()
	if err != nil {
		return err
	}

	parent := b.topBlock()
	if n > 1 {
		parent = b.stack[n-2]
	}
	if parent == nil {
		return ErrNoCurrentScope
	}

	b.stack[n-1] = nil
	b.stack = b.stack[:n-1]
	parent.Add(rendered)

	return nil
}

// End is the chainable form of Close. The first error is kept and returned
// by Err and by every method that compiles the pattern.
func (b *Builder) End(opts ...ScopeOptions) *Builder {
	if err := b.Close(opts...); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Err returns the first error recorded by End.
func (b *Builder) Err() error {
	return b.err
}

// AppendBlock appends finalized blocks to the top-level sequence after
// everything added so far. Fragments added later without an open scope still
// go to the first top-level block.
func (b *Builder) AppendBlock(blocks ...*Block) *Builder {
	for _, blk := range blocks {
		if blk != nil {
			b.blocks = append(b.blocks, blk)
		}
	}
	return b
}

// AddFlag appends a flag token. Tokens are not deduplicated; a repeated or
// unknown token makes compilation fail.
func (b *Builder) AddFlag(flag string) *Builder {
	b.flags = append(b.flags, flag)
	return b
}

// RemoveFlag removes every occurrence of flag.
func (b *Builder) RemoveFlag(flag string) *Builder {
	kept := b.flags[:0]
	for _, f := range b.flags {
		if f != flag {
			kept = append(kept, f)
		}
	}
	b.flags = kept
	return b
}

// Flags returns a copy of the active flag tokens in insertion order.
func (b *Builder) Flags() []string {
	return append([]string(nil), b.flags...)
}

// Source renders the top-level blocks into the pattern text. Scopes that are
// still open are not part of it.
func (b *Builder) Source() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	for _, blk := range b.blocks {
		s, err := blk.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}

	return sb.String(), nil
}

// Regexp compiles the current pattern with the current flags. The result is
// not cached; every call reflects the latest state of the Builder.
func (b *Builder) Regexp() (*regexp.Regexp, error) {
	src, err := b.Source()
	if err != nil {
		return nil, err
	}

	return regexp.CompileFlags(src, strings.Join(b.flags, ""), b.cfg.engineOptions()...)
}
