// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven test harness for [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/copyright-updater/cli"
)

// Case describes a single invocation of a [cli.App] under test.
type Case[A cli.App] struct {
	// Args are the command-line arguments passed to the app.
	Args []string
	// Stdin is the standard input of the app. Empty if nil.
	Stdin io.Reader
	// Env contains environment variables visible to the app.
	Env map[string]string
	// WantErr, if set, requires the run to fail with an error matching it
	// via [errors.Is].
	WantErr error
	// WantErrType, if set, requires the run to fail with an error whose type
	// matches it via [errors.As].
	WantErrType error
	// WantInStdout is a substring that must appear on standard output.
	WantInStdout string
	// WantInStderr is a substring that must appear on standard error.
	WantInStderr string
	// WantNothingPrinted requires both stdout and stderr to stay empty.
	WantNothingPrinted bool
	// CheckFunc runs after the invocation with the app instance, allowing
	// additional assertions on its state.
	CheckFunc func(*testing.T, A)
}

// Run invokes the app produced by setup for every case in the map.
func Run[A cli.App](t *testing.T, setup func(*testing.T) A, cases map[string]Case[A]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc)

			if tc.WantNothingPrinted {
				if stdout.Len() != 0 {
					t.Errorf("nothing must be printed to stdout, got: %q", stdout.String())
				}
				if stderr.Len() != 0 {
					t.Errorf("nothing must be printed to stderr, got: %q", stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr[A cli.App](t *testing.T, err error, tc Case[A]) {
	t.Helper()
	switch {
	case tc.WantErr != nil:
		if !errors.Is(err, tc.WantErr) {
			t.Fatalf("want error matching %v, got %v", tc.WantErr, err)
		}
	case tc.WantErrType != nil:
		target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
		if !errors.As(err, target) {
			t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
		}
	case err != nil:
		t.Fatalf("unexpected error: %v", err)
	}
}
