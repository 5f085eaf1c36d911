// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sum", []string{"1", "2", "+"}, "3\n"},
		{"stack", []string{"1", "2"}, "1\n2\n"},
		{"googolplex squared", []string{"1e1e100", "dup", "*"}, "1e2e100\n"},
		{"negative", []string{"--", "-2", "3", "powi"}, "-8\n"},
		{"scientific", []string{"-e", "1234"}, "1.234e3\n"},
		{"precision", []string{"-prec", "2", "-e", "2", "sqrt"}, "1.41e0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunJSON(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-json", "1e1e100", "0.5")
	require.Equal(t, 0, code, stderr)
	assert.JSONEq(t, `{"stack":["1e1e100","0.5"],"text":["1e1e100","0.5"]}`, stdout)
}

func TestRunEnv(t *testing.T) {
	t.Setenv("TOOBIG_FORMAT", "e")
	t.Setenv("TOOBIG_PREC", "1")
	code, stdout, _ := runArgs(t, "1234")
	require.Equal(t, 0, code)
	assert.Equal(t, "1.2e3\n", stdout)

	t.Setenv("TOOBIG_OUTPUT", "xml")
	code, _, stderr := runArgs(t, "1")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid output encoding")
}

// An invalid log level falls back to the default logger.
func TestRunLogLevel(t *testing.T) {
	t.Setenv("TOOBIG_LOG_LEVEL", "loud")
	code, stdout, stderr := runArgs(t, "1", "2", "+")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "3\n", stdout)
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: toobig")

	code, _, stderr = runArgs(t, "1", "0", "/", "0", "0", "/")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "division of zero by zero")

	code, _, stderr = runArgs(t, "1", "+")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "stack underflow")

	code, _, _ = runArgs(t, "-nosuchflag")
	assert.Equal(t, 2, code)
}

func TestDemo(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-demo")
	require.Equal(t, 0, code, stderr)
	for _, line := range []string{
		"a + b = 4e100",
		"a * b = 3.75e200",
		"1e1000 * 2 = 2e1000",
		"1e1e100 = 1e1e100",
		"(1e1e100)² = 1e2e100",
		"log10(1000) = 3",
		"2^10 = 1024",
		"sqrt(1e1001) = 3.162278e500",
		"1e50 < 1e100: true",
		"max(1e50, 1e100) = 1e100",
		"parsed '1.23e456': 1.23e456",
		"1e100 + 1e90 = 1.0000000001e100",
		"1e100 + 1e80 = 1e100",
	} {
		assert.Contains(t, stdout, line+"\n")
	}
	assert.True(t, strings.HasPrefix(stdout, "=== toobig demo ==="))
	assert.NotContains(t, stdout, "error:")
}
