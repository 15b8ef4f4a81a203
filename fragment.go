package xregex

import (
	"strconv"
	"strings"
)

// Flag tokens.
const (
	GlobalFlag     = "g" // find every match, not only the first
	IgnoreCaseFlag = "i"
	MultilineFlag  = "m" // ^ and $ match at line boundaries
	StickyFlag     = "y" // the match must start at the search position
	UnicodeFlag    = "u"
	DotAllFlag     = "s" // . matches \n
)

// Fixed fragments.
const (
	Dot                 = "."       // any char, \n only with DotAllFlag
	AnyChar             = `[\s\S]`  // any char regardless of DotAllFlag
	WhitespaceOnly      = `[^\S\n]` // whitespace except \n
	WhitespaceOrNewLine = `[\s\n]`
	Tab                 = `\t`
	VerticalTab         = `\v`
	CarriageReturn      = `\r`
	NewLine             = `\n`
	NonNewLine          = `[^\n]`
	WordChar            = `\w`
	NonWordChar         = `\W`
	WordBoundary        = `\b`
	NonWordBoundary     = `\B`
	Word                = `\w+`
	Start               = "^"
	End                 = "$"
	Digit               = `\d`
	NonDigit            = `\D`
)

// Quantifier suffixes.
const (
	ZeroOrMore     = "*"
	ZeroOrMoreLazy = "*?"
	OneOrMore      = "+"
	OneOrMoreLazy  = "+?"
	ZeroOrOne      = "?"
	ZeroOrOneLazy  = "??"
)

// EscapedChar escapes a single character, e.g. "." becomes `\.`.
func EscapedChar(char string) string {
	return `\` + char
}

// NonMatchGroup wraps content in a non-capturing group.
func NonMatchGroup(content string) string {
	return "(?:" + content + ")"
}

// LookAhead asserts that content follows without consuming it.
func LookAhead(content string) string {
	return "(?=" + content + ")"
}

// NegativeLookAhead asserts that content does not follow.
func NegativeLookAhead(content string) string {
	return "(?!" + content + ")"
}

// LookBehind asserts that content precedes the current position.
func LookBehind(content string) string {
	return "(?<=" + content + ")"
}

// NegativeLookBehind asserts that content does not precede the current
// position.
func NegativeLookBehind(content string) string {
	return "(?<!" + content + ")"
}

// NamedGroupBackReference refers back to the text captured by the named group.
func NamedGroupBackReference(name string) string {
	return `\k<` + name + ">"
}

// Range builds a character class from chars, e.g. Range("a-z", "_") is "[a-z_]".
func Range(chars ...string) string {
	return "[" + strings.Join(chars, "") + "]"
}

// NamedGroup wraps content in a capture group called name.
func NamedGroup(name, content string) string {
	return "(?<" + name + ">" + content + ")"
}

// Precise repeats exactly n times.
func Precise(n int) string {
	return "{" + strconv.Itoa(n) + "}"
}

// Min repeats at least min times.
func Min(min int) string {
	return "{" + strconv.Itoa(min) + ",}"
}

// MinLazy is the lazy form of Min.
func MinLazy(min int) string {
	return Min(min) + "?"
}

// MinMax repeats between min and max times.
func MinMax(min, max int) string {
	return "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}"
}

// MinMaxLazy is the lazy form of MinMax.
func MinMaxLazy(min, max int) string {
	return MinMax(min, max) + "?"
}
