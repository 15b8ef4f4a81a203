// Package xregex builds regular expressions from named fragments.
//
// A [Builder] keeps a stack of open scopes. Fragments are appended to the
// innermost scope; closing a scope renders it, optionally quantified and
// wrapped in a named capture group, and appends the result to its parent.
// Fragments added while no scope is open land in a top-level block that is
// part of the compiled pattern.
//
// Example:
//
//	b := xregex.New()
//	b.Add(xregex.Start).
//		Open().
//		Add(xregex.Digit).
//		End(xregex.ScopeOptions{GroupName: "num", Repeat: &xregex.RepeatSpec{OneOrMore: true}}).
//		Add(xregex.End)
//	ok, err := b.Test("2024") // true, <nil>
//
// Matching is delegated to the [regexp] package, which runs the pattern on
// coregex or regexp2 depending on the constructs it uses.
package xregex
