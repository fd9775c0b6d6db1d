// The roleset-package provides role-based authorization checks for your
// application code.
//
// You start by teaching the package where the current user comes from:
//
//	sessions := roleset.ContextFunc(func() (roleset.User, bool) {
//		// Look up the subject of the running request, e.g. from
//		// your session store.
//		return currentSessionUser()
//	})
//
// Any type with a Roles-method can act as the subject, for example:
//
//	type Account struct {
//		Name      string
//		HeldRoles []string
//	}
//
//	func (a *Account) Roles(hint ...string) []string {
//		return a.HeldRoles
//	}
//
// With a [Checker] in place, operations can be guarded by asserting the
// roles they require:
//
//	checker := roleset.New()
//	if err := checker.Assert(sessions, "admin", "moose_trainer"); err != nil {
//		// Either nobody is signed in or roles are missing,
//		// e.g. "Missing roles: moose_trainer".
//		return err
//	}
//
// Where a failed check is an expected branch rather than an error, use
// the boolean form instead:
//
//	if checker.Check(sessions, "admin") {
//		renderAdminNavigation()
//	}
//
// Both forms come in variants taking the subject directly ([Checker.AssertUser],
// [Checker.CheckUser]) and variants satisfied by any one of the given
// roles ([Checker.AssertAny], [Checker.CheckAny]).
//
// For more examples, check the repository.
// You may find additional information in the README.
package roleset
