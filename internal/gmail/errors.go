package gmail

import "errors"

// ErrInvalidArgument marks caller errors: malformed dates, mutually
// exclusive filter misuse, empty batch input. These are reported
// synchronously and never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrAuthenticationRequired marks missing or unusable credentials with no
// refresh path. It is fatal at startup.
var ErrAuthenticationRequired = errors.New("authentication required")
