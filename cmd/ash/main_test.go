/*
File   : ash/cmd/ash/main_test.go
Package: main
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ash-lang/ash/internal/obslog"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ash")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunFile_SuccessfulProgram_ExitsZero(t *testing.T) {
	path := writeScript(t, `print 1 + 2;`)
	code := runFile(path, obslog.Disabled(), false, true)
	assert.Equal(t, 0, code)
}

func TestRunFile_StaticError_Exits65(t *testing.T) {
	path := writeScript(t, `1 + ;`)
	code := runFile(path, obslog.Disabled(), false, true)
	assert.Equal(t, 65, code)
}

func TestRunFile_RuntimeError_Exits70(t *testing.T) {
	path := writeScript(t, `print missing;`)
	code := runFile(path, obslog.Disabled(), false, true)
	assert.Equal(t, 70, code)
}

func TestRunFile_MissingFile_Exits1(t *testing.T) {
	code := runFile(filepath.Join(t.TempDir(), "nope.ash"), obslog.Disabled(), false, true)
	assert.Equal(t, 1, code)
}

func TestRun_TooManyArgs_Exits64(t *testing.T) {
	code := run([]string{"a.ash", "b.ash"})
	assert.Equal(t, 64, code)
}

func TestRun_UnknownFlag_Exits64(t *testing.T) {
	code := run([]string{"--not-a-real-flag"})
	assert.Equal(t, 64, code)
}
