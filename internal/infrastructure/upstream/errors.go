package upstream

import (
	"context"
	"errors"
	"net"
)

// IsTimeout reports whether err came from a deadline, either the caller's
// context or the http.Client timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
