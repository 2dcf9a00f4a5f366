package registry

import "errors"

// ErrIOUnavailable is returned when the registry file is missing or cannot be read.
var ErrIOUnavailable = errors.New("registry file unavailable")
