package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffregistry/internal/nic"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNormalize(t *testing.T) {
	out, err := run(t, "normalize", "741922757V", "200012345678", "80 501 1234 x")
	require.NoError(t, err)
	assert.Equal(t, "197419202757\n200012345678\n198050101234\n", out)
}

func TestNormalize_Error(t *testing.T) {
	_, err := run(t, "normalize", "741922757V", "123456789Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, nic.ErrInvalidFormat)
	assert.Contains(t, err.Error(), `"123456789Z"`)
}

func TestNormalize_RequiresArgument(t *testing.T) {
	_, err := run(t, "normalize")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--compact", "855021234V")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(1985), got["birth_year"])
	assert.Equal(t, float64(2), got["day_of_year"])
	assert.Equal(t, "Female", got["sex"])
	assert.Equal(t, "198550201234", got["canonical"])
	assert.Equal(t, "02-01-1985", got["birth_date"])
}

func TestInfo_InvalidDay(t *testing.T) {
	_, err := run(t, "info", "803671234V")
	assert.ErrorIs(t, err, nic.ErrInvalidDay)
}

func TestFormat(t *testing.T) {
	out, err := run(t, "format", "741922757V")
	require.NoError(t, err)
	assert.Equal(t, "74 192 275 7V\n", out)

	out, err = run(t, "format", "-c", "741922757v")
	require.NoError(t, err)
	assert.Equal(t, "1974 192 0275 7\n", out)

	_, err = run(t, "format", "12345")
	assert.ErrorIs(t, err, nic.ErrInvalidLength)
}
