package repository

import "errors"

// ErrDuplicateInviteCode is returned by CreateAccountIfAbsent when the generated
// invite code collides with an existing account. Callers regenerate and retry.
var ErrDuplicateInviteCode = errors.New("invite code already in use")
