// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/cairostate/state"
	"github.com/stretchr/testify/require"
)

const testGenesis = `
[[contracts]]
address = "0x1"
class_hash = "0x2"
nonce = 1
[contracts.storage]
"0x10" = "0x5"

[[classes]]
hash = "0x2"
program = "0x0102"
`

const testReplay = `
[[writes]]
op = "set_storage"
address = "0x1"
key = "0x10"
value = "0x7"

[[writes]]
op = "increment_nonce"
address = "0x1"

[[writes]]
op = "deploy"
address = "0x3"
class_hash = "0x2"
`

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"state-tool", "--verbosity", "1"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestStateTool_ImportQueryAndReplay(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	_, err := runTool(t, "import", "--db", dir, writeFile(t, "genesis.toml", testGenesis))
	require.NoError(err)

	out, err := runTool(t, "query", "--db", dir, "storage", "0x1", "0x10")
	require.NoError(err)
	require.Equal("0x5\n", out)

	out, err = runTool(t, "query", "--db", dir, "class-hash", "0x1")
	require.NoError(err)
	require.Equal("0x2\n", out)

	out, err = runTool(t, "query", "--db", dir, "class", "0x2")
	require.NoError(err)
	require.Contains(out, "program: 2 bytes")
	require.Contains(out, "EXTERNAL: ")
	require.Contains(out, "CONSTRUCTOR: ")

	replayFile := writeFile(t, "writes.toml", testReplay)
	out, err = runTool(t, "replay", "--db", dir, replayFile)
	require.NoError(err)
	require.Equal("deployed 0x3: 0x2\nstorage 0x1/0x10: 0x7\nnonce 0x1: 0x2\n", out)

	// without --commit the database is not modified
	out, err = runTool(t, "query", "--db", dir, "nonce", "0x1")
	require.NoError(err)
	require.Equal("0x1\n", out)

	_, err = runTool(t, "replay", "--db", dir, "--commit", replayFile)
	require.NoError(err)

	out, err = runTool(t, "query", "--db", dir, "nonce", "0x1")
	require.NoError(err)
	require.Equal("0x2\n", out)

	// the contract at 0x3 is now deployed
	_, err = runTool(t, "replay", "--db", dir, replayFile)
	require.ErrorIs(err, state.ErrUnavailableContractAddress)
}

func TestStateTool_ReplayWithoutChangesReportsNoChanges(t *testing.T) {
	out, err := runTool(t, "replay", "--db", t.TempDir(), writeFile(t, "writes.toml", ""))
	require.NoError(t, err)
	require.Equal(t, "no changes\n", out)
}

func TestStateTool_MemoryBackendNeedsNoDirectory(t *testing.T) {
	out, err := runTool(t, "replay", "--backend", "memory", writeFile(t, "writes.toml", ""))
	require.NoError(t, err)
	require.Equal(t, "no changes\n", out)
}

func TestStateTool_InvalidInputsAreReported(t *testing.T) {
	dir := t.TempDir()
	tests := map[string][]string{
		"missing genesis":     {"import", "--db", dir},
		"malformed genesis":   {"import", "--db", dir, writeFile(t, "genesis.toml", "[[contracts]]\naddress = \"nope\"")},
		"unknown operation":   {"replay", "--db", dir, writeFile(t, "writes.toml", "[[writes]]\nop = \"burn\"")},
		"invalid address":     {"query", "--db", dir, "nonce", "0xzz"},
		"missing key":         {"query", "--db", dir, "storage", "0x1"},
		"undeclared class":    {"query", "--db", dir, "class", "0x9"},
		"unsupported backend": {"query", "--db", dir, "--backend", "sqlite", "nonce", "0x1"},
		"missing directory":   {"query", "nonce", "0x1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runTool(t, args...)
			require.Error(t, err)
		})
	}
}
