package exchangerate

import (
	"errors"
)

var (
	// ErrTransport means the request could not complete: network failure or a non-2xx status.
	ErrTransport = errors.New("rate source unavailable")
	// ErrSchema means the response arrived but did not carry the expected rate field.
	ErrSchema = errors.New("unexpected rate source response")
	// ErrValue means the rate field was present but unusable as a price.
	ErrValue = errors.New("invalid rate value")
)

// Kind classifies err for reporting. It returns "ok" for nil and "unknown" for errors outside the taxonomy.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrSchema):
		return "schema"
	case errors.Is(err, ErrValue):
		return "value"
	default:
		return "unknown"
	}
}
