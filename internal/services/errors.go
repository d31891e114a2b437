package services

import "errors"

// ErrNotFound covers every ownership-scoped miss. A caller cannot tell
// "doesn't exist" from "exists but owned by someone else"; that is
// deliberate, so row existence never leaks across accounts.
var ErrNotFound = errors.New("resource not found")
