package roleset

import (
	"errors"
	"strings"
)

var (
	// ErrNoUser is returned when no subject could be resolved for a check:
	// nobody is signed in on the supplied [Context] and no [User] was
	// handed in explicitly.
	ErrNoUser = errors.New("no logged in user, and none supplied as argument")
)

// A MissingRolesError reports that a subject was resolved but its held
// roles do not cover the required ones. Use [errors.As] to get at the
// missing roles programmatically.
type MissingRolesError struct {
	// The required roles the subject does not hold, deduplicated and
	// sorted. The sort keeps messages deterministic; no other ordering
	// is guaranteed.
	Missing []string
}

// The message reads "Missing roles: a, b"; callers may match on the
// "Missing roles" prefix.
func (e *MissingRolesError) Error() string {
	return "Missing roles: " + strings.Join(e.Missing, ", ")
}
