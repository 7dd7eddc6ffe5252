package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a ULID string used to correlate a request's log lines.
var NewRequestID = func() string {
	return ulid.Make().String()
}
