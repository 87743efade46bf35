package normalize

// UnwrapStrategy extracts the useful value from a wrapper shape. It
// reports whether it applied. Strategies are tried in order; the first
// one that applies wins.
type UnwrapStrategy func(value any) (any, bool)

// FirstArrayElement unwraps a non-empty array to its first element.
// The upstream API sometimes returns a single-element list where an
// object is expected.
func FirstArrayElement(value any) (any, bool) {
	arr, ok := value.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr[0], true
}

// EnvelopeKey unwraps an object that nests the entity under the given
// key, e.g. {"data": {...}}.
func EnvelopeKey(key string) UnwrapStrategy {
	return func(value any) (any, bool) {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		inner, ok := obj[key].(map[string]any)
		if !ok {
			return nil, false
		}
		return inner, true
	}
}

// Unwrap applies the first matching strategy, or returns the value
// unchanged when none applies.
func Unwrap(value any, strategies ...UnwrapStrategy) any {
	for _, s := range strategies {
		if inner, ok := s(value); ok {
			return inner
		}
	}
	return value
}
