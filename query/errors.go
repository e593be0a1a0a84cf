package query

import "fmt"

// WhereError is returned by Build when an UPDATE or DELETE has no
// accumulated predicate and IgnoreErrors is unset.
type WhereError struct {
	Kind Kind
}

func (e *WhereError) Error() string {
	return fmt.Sprintf("query: %s statement without WHERE clause; call IgnoreErrors(true) to build it anyway", e.Kind)
}

// QueryError reports structurally invalid builder input, recorded at the
// call site and surfaced by Build.
type QueryError struct {
	Op     string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query: %s: %s", e.Op, e.Reason)
}
