package regiojet

import "fmt"

// TransportError reports that the HTTP exchange itself failed: the
// network was unreachable, the request timed out, or the server answered
// with a non-2xx status. StatusCode is zero when no response was
// received at all.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports that the server answered 2xx but the
// body was not the expected JSON array of objects.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to decode response JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
