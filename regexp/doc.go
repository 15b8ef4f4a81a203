// Package regexp compiles builder output with the fastest engine that can run
// it.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// unless they use constructs RE2 cannot execute, such as lookarounds, named
// backreferences or the (?<name>...) group syntax; those fall back to
// [regexp2]. Flag tokens follow the JavaScript flag alphabet ("gimsuy") and are
// validated before compilation.
package regexp
