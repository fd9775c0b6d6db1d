package roleset_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trevex/roleset"
	"github.com/trevex/roleset/testsuite"
)

func TestCheckerAssert(t *testing.T) {
	checker := roleset.New()
	ctx := roleset.SignedIn(roleset.StaticUser("admin", "user", "moose_trainer"))

	require.NoError(t, checker.Assert(ctx, "admin"))
	require.NoError(t, checker.Assert(ctx, "admin", "user", "moose_trainer"))
	require.NoError(t, checker.Assert(ctx))

	err := checker.Assert(ctx, "moose_feeder")
	require.EqualError(t, err, "Missing roles: moose_feeder")

	err = checker.Assert(ctx, "moose_trainer", "moose_feeder")
	require.EqualError(t, err, "Missing roles: moose_feeder")

	err = checker.Assert(ctx, "moose_feeder", "admin", "moose_shearer", "moose_feeder")
	missing := &roleset.MissingRolesError{}
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"moose_feeder", "moose_shearer"}, missing.Missing)

	err = checker.Assert(roleset.Anonymous, "moose_trainer")
	require.ErrorIs(t, err, roleset.ErrNoUser)
	require.ErrorContains(t, err, "no logged in user")

	require.ErrorIs(t, checker.Assert(nil, "admin"), roleset.ErrNoUser)
}

func TestCheckerAssertUser(t *testing.T) {
	checker := roleset.New()
	subject := roleset.StaticUser("admin", "user", "moose_trainer")

	// The explicit subject wins even if nobody is signed in.
	require.NoError(t, checker.AssertUser(subject, "moose_trainer"))
	require.ErrorIs(t, checker.AssertUser(nil, "moose_trainer"), roleset.ErrNoUser)

	err := checker.AssertUser(subject, "moose_feeder")
	require.EqualError(t, err, "Missing roles: moose_feeder")
}

func TestCheckerAssertAny(t *testing.T) {
	checker := roleset.New()
	ctx := roleset.SignedIn(roleset.StaticUser("admin", "user", "moose_trainer"))

	require.NoError(t, checker.AssertAny(ctx, "moose_feeder", "admin"))
	require.NoError(t, checker.AssertAny(ctx))

	err := checker.AssertAny(ctx, "moose_shearer", "moose_feeder")
	missing := &roleset.MissingRolesError{}
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"moose_feeder", "moose_shearer"}, missing.Missing)

	require.ErrorIs(t, checker.AssertAny(roleset.Anonymous, "admin"), roleset.ErrNoUser)
	require.NoError(t, checker.AssertAnyUser(roleset.StaticUser("user"), "admin", "user"))
	require.ErrorIs(t, checker.AssertAnyUser(nil, "admin"), roleset.ErrNoUser)
}

func TestCheckerCheck(t *testing.T) {
	checker := roleset.New()
	ctx := roleset.SignedIn(roleset.StaticUser("admin", "user", "moose_trainer"))

	require.True(t, checker.Check(ctx, "admin"))
	require.True(t, checker.Check(ctx))
	require.False(t, checker.Check(ctx, "moose_feeder"))
	require.False(t, checker.Check(roleset.Anonymous, "admin"))
	require.False(t, checker.Check(nil, "admin"))

	require.True(t, checker.CheckUser(roleset.StaticUser("admin"), "admin"))
	require.False(t, checker.CheckUser(nil, "admin"))
	require.True(t, checker.CheckAny(ctx, "moose_feeder", "user"))
	require.False(t, checker.CheckAny(ctx, "moose_feeder", "moose_shearer"))
	require.True(t, checker.CheckAnyUser(roleset.StaticUser("user"), "admin", "user"))
}

func TestCheckerLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	checker := roleset.New(roleset.WithLogger(log))
	ctx := roleset.SignedIn(roleset.StaticUser("admin", "user", "moose_trainer"))

	require.NoError(t, checker.Assert(ctx, "admin"))
	require.Contains(t, buf.String(), "granted role access")
	require.Contains(t, buf.String(), "admin")

	buf.Reset()
	err := checker.Assert(ctx, "moose_feeder")
	require.EqualError(t, err, "Missing roles: moose_feeder")
	require.Contains(t, buf.String(), "denied role access")
	require.Contains(t, buf.String(), "moose_feeder")

	// Above debug level nothing is written, but decisions are unchanged.
	buf.Reset()
	quiet := roleset.New(roleset.WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	require.NoError(t, quiet.Assert(ctx, "admin"))
	require.Error(t, quiet.Assert(ctx, "moose_feeder"))
	require.Empty(t, buf.String())
}

func TestCheckerWithTestSuite(t *testing.T) {
	testsuite.RunTestAll(t, map[string]testsuite.TestConfig{
		"default": {
			Checker: roleset.New(),
		},
		"debug": {
			Checker: roleset.New(roleset.WithLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))),
		},
		"info": {
			Checker: roleset.New(roleset.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
		},
	})
}

func BenchmarkChecker(b *testing.B) {
	testsuite.RunBenchmarkAll(b, map[string]*roleset.Checker{
		"default": roleset.New(),
		"debug":   roleset.New(roleset.WithLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))),
	})
}
