package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

// ErrStorageUnavailable marks a failure of the backing store that is worth
// retrying: the database could not be reached, timed out, or shed load.
// Permanent failures (bad SQL, constraint violations) are never wrapped
// with it.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IsUnavailable reports whether err, anywhere in its chain, is a storage
// availability failure rather than a permanent one.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 08: connection exception, 53: insufficient resources,
		// 57: operator intervention (shutdown, crash recovery)
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return true
		}
	}
	return false
}
