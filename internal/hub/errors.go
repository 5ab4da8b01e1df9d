package hub

import "errors"

// ErrHubExists signals an attempt to construct the process-wide hub while one
// already holds authority. Construction must fail fast rather than silently
// create a second authority.
var ErrHubExists = errors.New("hub: singleton already constructed")

// dispatchError aggregates the failures of one asynchronous fan-out pass.
type dispatchError struct {
	name string
	err  error
}

func (e *dispatchError) Error() string {
	return "dispatch " + e.name + ": " + e.err.Error()
}

// Unwrap exposes the joined observer errors for errors.Is/As.
func (e *dispatchError) Unwrap() error { return e.err }

// IsDispatchFailed reports whether err carries aggregated observer failures
// from NotifyAsync.
func IsDispatchFailed(err error) bool {
	var de *dispatchError
	return errors.As(err, &de)
}
