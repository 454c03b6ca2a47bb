package stage

import "errors"

var (
	// ErrNotMounted is returned by operations on a session after Unmount.
	ErrNotMounted = errors.New("stage: session is not mounted")
	// ErrHPDepleted refuses a start while the host reports HP <= 0.
	ErrHPDepleted = errors.New("stage: cannot start with HP at 0")
	// ErrMissingCapability means Mount was called without a required host capability.
	ErrMissingCapability = errors.New("stage: missing host capability")
)
