package fetcher

import "encoding/json"

// Result is the outcome of one Task: either a Success carrying the payload or
// a Failure carrying the error. Exactly one of Value and Err is meaningful.
type Result struct {
	// ID is the identifier of the task that produced this result
	ID string

	// Value is the raw upstream payload. Only valid when Err is nil.
	Value json.RawMessage

	// Err holds the captured failure, usually a *FetchError.
	Err error
}

// Success builds a successful result.
func Success(id string, value json.RawMessage) Result {
	return Result{ID: id, Value: value}
}

// Failure builds a failed result.
func Failure(id string, err error) Result {
	return Result{ID: id, Err: err}
}

// OK reports whether the task succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Results indexes a FetchAll round by task identifier.
type Results map[string]Result

// Index builds a Results lookup from an ordered result slice.
func Index(results []Result) Results {
	out := make(Results, len(results))
	for _, r := range results {
		out[r.ID] = r
	}
	return out
}
