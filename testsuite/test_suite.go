// The testsuite-package runs a shared battery of authorization checks
// against any [roleset.Checker] configuration. It is used by the tests
// of the roleset-package to ensure that optional features, such as
// decision logging, never change the outcome of a check.
package testsuite

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trevex/roleset"
	"golang.org/x/exp/slices"
)

// Subject is the fixed user every battery run checks against.
var Subject = roleset.StaticUser("admin", "user", "moose_trainer")

type TestConfig struct {
	Checker *roleset.Checker
}

func RunTestAll(t *testing.T, configs map[string]TestConfig) {
	for name, config := range configs {
		t.Run(name, func(t *testing.T) {
			RunTest(t, config.Checker)
		})
	}
}

func RunTest(t *testing.T, checker *roleset.Checker) {
	ctx := roleset.SignedIn(Subject)
	// A host may answer ok with a nil user; the checker treats that as
	// nobody signed in.
	nobody := roleset.ContextFunc(func() (roleset.User, bool) { return nil, true })

	t.Run("asserts", func(t *testing.T) {
		require.NoError(t, checker.Assert(ctx, "admin"))
		require.NoError(t, checker.Assert(ctx, "admin", "user", "moose_trainer"))
		require.NoError(t, checker.Assert(ctx))

		err := checker.Assert(ctx, "moose_feeder")
		require.Error(t, err)
		missing := &roleset.MissingRolesError{}
		require.ErrorAs(t, err, &missing)
		require.Equal(t, []string{"moose_feeder"}, missing.Missing)
		require.Contains(t, err.Error(), "Missing roles")

		err = checker.Assert(ctx, "moose_trainer", "moose_feeder")
		require.ErrorAs(t, err, &missing)
		if slices.Compare(missing.Missing, []string{"moose_feeder"}) != 0 {
			t.Fatalf("Expected missing roles %v, but got %v instead", []string{"moose_feeder"}, missing.Missing)
		}

		require.ErrorIs(t, checker.Assert(roleset.Anonymous, "admin"), roleset.ErrNoUser)
		require.ErrorIs(t, checker.Assert(roleset.Anonymous), roleset.ErrNoUser)
		require.ErrorIs(t, checker.Assert(nobody, "admin"), roleset.ErrNoUser)
	})

	t.Run("checks", func(t *testing.T) {
		require.True(t, checker.Check(ctx, "admin"))
		require.True(t, checker.Check(ctx, "admin", "user", "moose_trainer"))
		require.True(t, checker.Check(ctx))
		require.False(t, checker.Check(ctx, "moose_feeder"))
		require.False(t, checker.Check(ctx, "moose_trainer", "moose_feeder"))
		require.False(t, checker.Check(roleset.Anonymous, "admin"))
		require.False(t, checker.Check(nobody, "admin"))
	})

	t.Run("any", func(t *testing.T) {
		require.NoError(t, checker.AssertAny(ctx, "moose_feeder", "user"))
		require.NoError(t, checker.AssertAny(ctx))
		require.True(t, checker.CheckAny(ctx, "moose_feeder", "user"))

		err := checker.AssertAny(ctx, "moose_feeder", "moose_shearer")
		missing := &roleset.MissingRolesError{}
		require.ErrorAs(t, err, &missing)
		require.Equal(t, []string{"moose_feeder", "moose_shearer"}, missing.Missing)
		require.False(t, checker.CheckAny(ctx, "moose_feeder", "moose_shearer"))

		require.ErrorIs(t, checker.AssertAny(roleset.Anonymous, "admin"), roleset.ErrNoUser)
		require.ErrorIs(t, checker.AssertAny(nobody, "admin"), roleset.ErrNoUser)
		require.False(t, checker.CheckAny(nobody, "admin"))
	})

	t.Run("users", func(t *testing.T) {
		require.NoError(t, checker.AssertUser(Subject, "moose_trainer"))
		require.NoError(t, checker.AssertAnyUser(Subject, "moose_feeder", "admin"))
		require.True(t, checker.CheckUser(Subject, "moose_trainer"))
		require.True(t, checker.CheckAnyUser(Subject, "moose_feeder", "admin"))

		require.ErrorIs(t, checker.AssertUser(nil, "admin"), roleset.ErrNoUser)
		require.ErrorIs(t, checker.AssertAnyUser(nil, "admin"), roleset.ErrNoUser)
		require.False(t, checker.CheckUser(nil, "admin"))
		require.False(t, checker.CheckAnyUser(nil, "admin"))
	})

	t.Run("idempotence", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.True(t, checker.Check(ctx, "admin"))
			require.False(t, checker.Check(ctx, "moose_feeder"))
		}
	})
}

func RunBenchmarkAll(b *testing.B, checkers map[string]*roleset.Checker) {
	for name, checker := range checkers {
		b.Run(name, func(b *testing.B) {
			RunBenchmark(b, checker)
		})
	}
}

func RunBenchmark(b *testing.B, checker *roleset.Checker) {
	ctx := roleset.SignedIn(Subject)

	b.Run("granted", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			err := checker.Assert(ctx, "admin", "moose_trainer")
			require.NoError(b, err)
		}
	})
	b.Run("denied", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			err := checker.Assert(ctx, "moose_feeder")
			require.Error(b, err)
		}
	})
}
