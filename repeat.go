package xregex

// RepeatSpec configures the quantifier applied to a block when it is closed.
//
// When several modes are set the first one in this order wins: ZeroOrMore,
// OneOrMore, Precise, Min together with Max, Min alone. A zero count counts
// as unset. Lazy applies to every mode except Precise.
type RepeatSpec struct {
	Lazy       bool
	ZeroOrMore bool
	OneOrMore  bool
	Precise    int
	Min        int
	Max        int
}

// Repeat appends the quantifier described by spec to body.
func Repeat(body string, spec RepeatSpec) (string, error) {
	switch {
	case spec.ZeroOrMore:
		if spec.Lazy {
			return body + ZeroOrMoreLazy, nil
		}
		return body + ZeroOrMore, nil
	case spec.OneOrMore:
		if spec.Lazy {
			return body + OneOrMoreLazy, nil
		}
		return body + OneOrMore, nil
	case spec.Precise > 0:
		return body + Precise(spec.Precise), nil
	case spec.Min > 0 && spec.Max > 0:
		if spec.Lazy {
			return body + MinMaxLazy(spec.Min, spec.Max), nil
		}
		return body + MinMax(spec.Min, spec.Max), nil
	case spec.Min > 0:
		if spec.Lazy {
			return body + MinLazy(spec.Min), nil
		}
		return body + Min(spec.Min), nil
	}

	return "", ErrUnconfiguredRepeat
}
