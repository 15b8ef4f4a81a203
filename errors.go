package xregex

import "errors"

// ErrUnconfiguredRepeat indicates a RepeatSpec with none of its modes set.
var ErrUnconfiguredRepeat = errors.New("xregex: no repeat option set")

// ErrNoOpenScope indicates a scope close without a matching open.
var ErrNoOpenScope = errors.New("xregex: no block to end")

// ErrNoCurrentScope indicates that a closed scope had no parent to receive
// its rendering.
var ErrNoCurrentScope = errors.New("xregex: no current block")

// ErrInvalidScopeOptions indicates a scope option document that cannot be
// decoded.
var ErrInvalidScopeOptions = errors.New("xregex: invalid scope options")
