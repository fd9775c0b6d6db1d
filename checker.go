package roleset

import (
	"log/slog"

	"github.com/samber/lo"
)

type Option interface {
	do(*Checker)
}

type optionFunc func(*Checker)

func (fn optionFunc) do(c *Checker) {
	fn(c)
}

// WithLogger makes the [Checker] report every decision on log at debug
// level. A nil logger (the default) disables the reporting; either way
// the outcome of a check is never affected by it.
func WithLogger(log *slog.Logger) Option {
	return optionFunc(func(c *Checker) { c.log = log })
}

// A Checker decides whether a subject's held roles cover a required set.
// It holds no state besides its logger: every check queries a fresh role
// snapshot of the subject, mutates nothing and is safe for concurrent
// use.
type Checker struct {
	log *slog.Logger
}

// New creates a [Checker].
func New(options ...Option) *Checker {
	c := &Checker{}
	lo.ForEach(options, func(o Option, _ int) { o.do(c) })
	return c
}

// The two ways a list of required roles can be satisfied.
type requirement int

const (
	allOf requirement = iota
	anyOf
)

// Assert checks that the currently signed-in subject of ctx holds every
// required role and returns nil on success; an empty required list
// succeeds vacuously. When nobody is signed in (or ctx is nil) it
// returns [ErrNoUser]; when at least one role is missing it returns a
// [*MissingRolesError] listing exactly the required roles the subject
// does not hold.
func (c *Checker) Assert(ctx Context, required ...string) error {
	u, ok := currentUser(ctx)
	if !ok {
		return ErrNoUser
	}
	return c.assert(u, required, allOf)
}

// AssertUser is [Checker.Assert] for an explicitly supplied subject,
// bypassing ctx resolution. A nil u returns [ErrNoUser].
func (c *Checker) AssertUser(u User, required ...string) error {
	if u == nil {
		return ErrNoUser
	}
	return c.assert(u, required, allOf)
}

// AssertAny checks that the currently signed-in subject of ctx holds at
// least one of the candidate roles; an empty candidate list succeeds.
// On failure the returned [*MissingRolesError] lists all candidates,
// none of which are held.
func (c *Checker) AssertAny(ctx Context, candidates ...string) error {
	u, ok := currentUser(ctx)
	if !ok {
		return ErrNoUser
	}
	return c.assert(u, candidates, anyOf)
}

// AssertAnyUser is [Checker.AssertAny] for an explicitly supplied
// subject.
func (c *Checker) AssertAnyUser(u User, candidates ...string) error {
	if u == nil {
		return ErrNoUser
	}
	return c.assert(u, candidates, anyOf)
}

// Check calls [Checker.Assert] with identical argument semantics and
// folds the result into a boolean for branching logic: true on success,
// false on any error whatsoever. It never fails.
func (c *Checker) Check(ctx Context, required ...string) bool {
	return c.Assert(ctx, required...) == nil
}

// CheckUser is [Checker.Check] for an explicitly supplied subject.
func (c *Checker) CheckUser(u User, required ...string) bool {
	return c.AssertUser(u, required...) == nil
}

// CheckAny is the boolean form of [Checker.AssertAny].
func (c *Checker) CheckAny(ctx Context, candidates ...string) bool {
	return c.AssertAny(ctx, candidates...) == nil
}

// CheckAnyUser is the boolean form of [Checker.AssertAnyUser].
func (c *Checker) CheckAnyUser(u User, candidates ...string) bool {
	return c.AssertAnyUser(u, candidates...) == nil
}

// Decides whether the subject's snapshot satisfies the required roles.
// The raw required list is passed through to the role lookup as hint.
func (c *Checker) assert(u User, required []string, req requirement) error {
	need := lo.Uniq(required)
	have := NewRoleSet(u.Roles(required...)...)

	switch req {
	case allOf:
		if missing := have.Missing(need...); len(missing) > 0 {
			c.debug("denied role access", need)
			return &MissingRolesError{Missing: missing}
		}
	case anyOf:
		if len(need) > 0 && !have.HasAny(need...) {
			// None held, so the missing set is the whole candidate list.
			c.debug("denied role access", need)
			return &MissingRolesError{Missing: have.Missing(need...)}
		}
	default:
		panic("unreachable")
	}

	c.debug("granted role access", need)
	return nil
}

// Emits the decision at debug level. Must never change the outcome of a
// check and must stay silent when no sink is configured.
func (c *Checker) debug(msg string, roles []string) {
	if c.log == nil {
		return
	}
	c.log.Debug(msg, slog.Any("roles", roles))
}

func currentUser(ctx Context) (User, bool) {
	if ctx == nil {
		return nil, false
	}
	u, ok := ctx.CurrentUser()
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
