package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/kyle_anderson/gaur/pkg/setexpr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{log: zap.NewNop()}
	root := a.rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	for _, test := range []struct {
		name     string
		args     []string
		expected string
	}{
		{"union", []string{"union", "{1,2,3}", "{2,3,4}"}, "{1,2,3,4}"},
		{"union of three", []string{"union", "{a}", "{b}", "{c,a}"}, "{a,b,c}"},
		{"difference", []string{"difference", "{1,2,3}", "{2,3,4}"}, "{1}"},
		{"difference folds left", []string{"difference", "{1,2,3}", "{2}", "{3}"}, "{1}"},
		{"intersect", []string{"intersect", "{1,2,3}", "{2,3,4}"}, "{2,3}"},
		{"intersect with empty", []string{"intersect", "{1,2,3}", "{}"}, "{}"},
		{"subset", []string{"subset", "{1,2,3}", "{1,2,3,4}"}, "true"},
		{"not subset", []string{"subset", "{2,3,4}", "{1,2,3}"}, "false"},
		{"superset", []string{"superset", "{1,2,3,4}", "{2,3,4}"}, "true"},
		{"equal", []string{"equal", "{3,2,1}", "{1,2,3}"}, "true"},
		{"not equal", []string{"equal", "{1,2}", "{1,3}"}, "false"},
	} {
		test := test // Capture
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}

func TestNamedSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primes: [2, 3, 5, 7]\nodds: [1, 3, 5, 7, 9]\n"), 0o600))

	out, err := run(t, "--sets", path, "intersect", "primes", "odds")
	require.NoError(t, err)
	assert.Equal(t, "{3,5,7}", out)

	out, err = run(t, "--sets", path, "subset", "primes", "odds")
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	out, err = run(t, "--sets", path, "union", "primes", "{11}")
	require.NoError(t, err)
	assert.Equal(t, "{11,2,3,5,7}", out)

	_, err = run(t, "--sets", path, "union", "primes", "evens")
	var unknown *setexpr.ErrUnknownSet
	assert.ErrorAs(t, err, &unknown)
}

func TestErrors(t *testing.T) {
	t.Run("too few operands", func(t *testing.T) {
		_, err := run(t, "union", "{1}")
		assert.Error(t, err)
	})

	t.Run("too many operands", func(t *testing.T) {
		_, err := run(t, "subset", "{1}", "{2}", "{3}")
		assert.Error(t, err)
	})

	t.Run("malformed literal", func(t *testing.T) {
		_, err := run(t, "union", "{1,2", "{3}")
		var malformed *setexpr.ErrMalformedLiteral
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("missing definitions file", func(t *testing.T) {
		_, err := run(t, "--sets", filepath.Join(t.TempDir(), "missing.yaml"), "union", "{1}", "{2}")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := run(t, "--log-level", "loud", "union", "{1}", "{2}")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, version))
}
