package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/treegridgo/internal/cli"
	"github.com/specialistvlad/treegridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TreeFromFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"depts.yaml": `
- deptId: 1
  parentDeptId: 0
  deptName: Head Office
- deptId: 2
  parentDeptId: 1
  deptName: Sales
  sortOrder: 2
- deptId: 3
  parentDeptId: 1
  deptName: Support
  sortOrder: 1
`,
	})
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"--preset", "department", "-a", "flatten", dir})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t,
		"1\t-\t0\tHead Office\n"+
			"3\t1\t0\tSupport\n"+
			"2\t1\t1\tSales\n",
		out.String())
	assert.Contains(t, logs.String(), "Forest built.")
}

func TestRun_CycleFails(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"menu.hcl": `
record "A" {
  parent = "B"
}
record "B" {
  parent = "A"
}
`,
	})

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{dir})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle detected in parent references: A -> B -> A")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}
