package dialect

type Dialect interface {
	// Name identifies the dialect, for callers keying per-dialect caches.
	Name() string
	// QuoteIdentifier quotes name only when it is not a plain identifier,
	// so everyday lowercase names render bare.
	QuoteIdentifier(name string) string
	// Placeholder renders the n-th (1-based) bind parameter marker.
	Placeholder(n int) string
	// RenderValue renders v as an inline SQL literal.
	RenderValue(v any) string
}

// plainIdentifier reports whether name can be rendered without quoting:
// lowercase letters, digits and underscores, not starting with a digit.
func plainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
