package authorization

import "errors"

// ErrForbidden is returned when the caller is neither the target principal
// nor a holder of one of the configured admin roles
var ErrForbidden = errors.New("forbidden")
