package roleset

// A User is the subject of a check: any authenticated principal able to
// report the roles it currently holds.
//
// The hint lists the roles the caller is about to require. It is handed
// through to the lookup untouched; implementations backed by larger
// permission systems may use it to scope their lookup, but are expected
// to return the full set of held roles regardless. Roles must behave as
// a read-only snapshot query: no writes, no blocking I/O, safe for
// concurrent readers.
type User interface {
	Roles(hint ...string) []string
}

// A Context supplies the ambient caller's currently signed-in [User],
// typically adapted from a request or session context by the hosting
// application. The second return is false when nobody is signed in.
type Context interface {
	CurrentUser() (User, bool)
}

// ContextFunc adapts a plain function to the [Context] interface.
type ContextFunc func() (User, bool)

func (fn ContextFunc) CurrentUser() (User, bool) {
	return fn()
}

// Anonymous is a [Context] with nobody signed in.
var Anonymous Context = ContextFunc(func() (User, bool) { return nil, false })

// SignedIn returns a [Context] whose current user is always u.
func SignedIn(u User) Context {
	return ContextFunc(func() (User, bool) { return u, u != nil })
}

type staticUser []string

func (u staticUser) Roles(hint ...string) []string {
	return u
}

// StaticUser returns a [User] holding a fixed set of roles, useful in
// tests and for callers whose roles were resolved ahead of time.
func StaticUser(roles ...string) User {
	return staticUser(roles)
}
