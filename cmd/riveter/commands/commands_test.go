package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/dball/riveter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderSchema = `
class: Order
attributes:
  - {name: status, type: enum, enum: {name: Status, members: [Draft, Placed]}, default: Draft, required: true}
  - {name: quantity, type: integer, default: 1}
  - {name: term, type: date_range}
  - {name: placed_at, type: time}
`

func run(t *testing.T, stdin string, args ...string) (out string, err error) {
	root := newRoot()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	out = buf.String()
	return
}

func writeFile(t *testing.T, name, content string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return
}

func TestDescribe(t *testing.T) {
	path := writeFile(t, "order.yaml", orderSchema)
	out, err := run(t, "", "describe", "--schema", path)
	require.NoError(t, err)
	assert.Contains(t, out, "class Order\n")
	assert.Regexp(t, `status\s+enum\s+default=Draft required`, out)
	assert.Regexp(t, `term_from\s+timeliness`, out)
	assert.Regexp(t, `status\s+inclusion\s+in=\[Draft, Placed\]`, out)

	out, err = run(t, "", "describe", "--schema", path, "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "status")

	_, err = run(t, "", "describe")
	assert.True(t, errors.Is(err, Error{Code: "cli.missingSchema"}))
	_, err = run(t, "", "describe", "--schema", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	out, err := run(t, "b: ''\na: [1, '', 2]\nc: {d: null, e: E}\n", "clean")
	require.NoError(t, err)
	assert.Equal(t, "a:\n  - 1\n  - 2\nc:\n  e: E\n", out)

	path := writeFile(t, "order.yaml", orderSchema)
	out, err = run(t, "quantity: 2\nunknown: x\n", "clean", "--schema", path, "-")
	require.NoError(t, err)
	assert.Equal(t, "quantity: 2\n", out)
}

func TestApply(t *testing.T) {
	schemaFile := writeFile(t, "order.yaml", orderSchema)
	paramsFile := writeFile(t, "params.yaml", "status: Placed\nterm: 2010-01-12..2011-01-12\nplaced_at: ''\nunknown: x\n")
	out, err := run(t, "", "apply", "--schema", schemaFile, paramsFile)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"placed_at: null",
		"quantity: 1",
		"status: Placed",
		"term: 2010-01-12..2011-01-12",
		"term_from: \"2010-01-12\"",
		"term_to: \"2011-01-12\"",
		"",
	}, "\n"), out)

	_, err = run(t, "", "apply", "--schema", schemaFile, "--strict", paramsFile)
	assert.True(t, errors.Is(err, Error{Code: UnknownAttribute}))
	assert.Equal(t, []string{"unknown"}, err.(Error).Context["names"])

	_, err = run(t, "status: Bogus\n", "apply", "--schema", schemaFile)
	assert.Error(t, err)

	out, err = run(t, "placed_at: 2010-01-12 14:56:00\n", "apply", "--schema", schemaFile, "--location", "America/New_York", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "placed_at")

	_, err = run(t, "", "apply", "--schema", schemaFile, "--location", "Nowhere/Special")
	assert.True(t, errors.Is(err, Error{Code: "cli.invalidLocation"}))
}
