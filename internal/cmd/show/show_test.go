package show

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShow_ListsAllSubcommands(t *testing.T) {
	var buf bytes.Buffer
	opts := &showOptions{noColor: true}

	require.NoError(t, runShow(opts, &buf))

	out := buf.String()
	assert.Contains(t, out, "rebase")
	assert.Contains(t, out, "interactive rebase")
	assert.Contains(t, out, "version")
}

func TestRunShow_SingleSubcommand(t *testing.T) {
	var buf bytes.Buffer
	opts := &showOptions{name: "rebase", noColor: true}

	require.NoError(t, runShow(opts, &buf))

	out := buf.String()
	assert.Contains(t, out, "--strategy")
	assert.Contains(t, out, "recursive, resolve, octopus, ort, ours, subtree")
	assert.Contains(t, out, "ref, ref")
}

func TestRunShow_UnknownSubcommand(t *testing.T) {
	opts := &showOptions{name: "frobnicate", noColor: true}

	err := runShow(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subcommand")
}

func TestRunShow_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := &showOptions{name: "tag", output: "json", noColor: true}

	require.NoError(t, runShow(opts, &buf))

	var got subcommandJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "tag", got.Name)
	assert.Equal(t, []string{"text", "ref"}, got.Arguments)
	require.Len(t, got.Flags, 1)
	assert.Equal(t, "sign", got.Flags[0].Name)
}

func TestRunShow_InvalidOutputFormat(t *testing.T) {
	opts := &showOptions{output: "xml", noColor: true}

	err := runShow(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
