package xregex

import (
	"fmt"

	"go.dw1.io/xregex/internal/cast"
	"go.dw1.io/xregex/json"
)

// ScopeOptions is applied to a scope when it is closed.
type ScopeOptions struct {
	// GroupName, if set, turns the scope into a named capture group.
	GroupName string

	// Repeat, if set, quantifies the scope. The quantifier is applied inside
	// the group, so the group captures the whole repetition.
	Repeat *RepeatSpec
}

// ParseScopeOptions decodes scope options from their JSON form, for example
//
//	{"groupName": "num", "repeat": {"oneOrMore": true, "lazy": 1}}
//
// Mode fields use JavaScript truthiness and counts must be non-negative
// integers. A present "repeat" object without any mode set decodes fine;
// closing a scope with it fails with ErrUnconfiguredRepeat.
func ParseScopeOptions(data []byte) (ScopeOptions, error) {
	doc, err := json.UnmarshalObject(data)
	if err != nil {
		return ScopeOptions{}, fmt.Errorf("%w: %v", ErrInvalidScopeOptions, err)
	}

	var opts ScopeOptions

	if name := doc["groupName"]; cast.Truthy(name) {
		s, ok := name.(string)
		if !ok {
			return ScopeOptions{}, fmt.Errorf("%w: groupName must be a string, got %T", ErrInvalidScopeOptions, name)
		}
		opts.GroupName = s
	}

	if repeat := doc["repeat"]; repeat != nil {
		m, ok := repeat.(map[string]any)
		if !ok {
			return ScopeOptions{}, fmt.Errorf("%w: repeat must be an object, got %T", ErrInvalidScopeOptions, repeat)
		}

		spec, err := parseRepeatSpec(m)
		if err != nil {
			return ScopeOptions{}, err
		}
		opts.Repeat = &spec
	}

	return opts, nil
}

func parseRepeatSpec(doc map[string]any) (RepeatSpec, error) {
	spec := RepeatSpec{
		Lazy:       cast.Truthy(doc["lazy"]),
		ZeroOrMore: cast.Truthy(doc["zeroOrMore"]),
		OneOrMore:  cast.Truthy(doc["oneOrMore"]),
	}

	for key, dst := range map[string]*int{
		"precise": &spec.Precise,
		"min":     &spec.Min,
		"max":     &spec.Max,
	} {
		n, err := cast.Count(doc[key])
		if err != nil {
			return RepeatSpec{}, fmt.Errorf("%w: repeat.%s: %v", ErrInvalidScopeOptions, key, err)
		}
		*dst = n
	}

	return spec, nil
}
