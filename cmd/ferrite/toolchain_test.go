// Copyright 2024 The Ferrite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferrite/rust"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTriplesCommand(t *testing.T) {
	out, err := runCommand(t, "toolchain", "triples")
	require.NoError(t, err)

	for _, triple := range []string{
		"aarch64-unknown-linux-gnu",
		"x86_64-unknown-linux-gnu",
		"aarch64-apple-darwin",
		"x86_64-apple-darwin",
		"aarch64-pc-windows-msvc",
		"x86_64-pc-windows-msvc",
	} {
		assert.Contains(t, out, triple)
	}
}

func TestResolveCommand(t *testing.T) {
	decl := `
[toolchain]
deny_lints = ["warnings"]
rustc_target_triple = "x86_64-unknown-linux-musl"
`
	path := filepath.Join(t.TempDir(), "rust_toolchain.toml")
	require.NoError(t, os.WriteFile(path, []byte(decl), 0644))

	out, err := runCommand(t, "toolchain", "resolve", "--file", path)
	require.NoError(t, err)

	var registration rust.Registration
	require.NoError(t, json.Unmarshal([]byte(out), &registration))
	assert.Equal(t, "x86_64-unknown-linux-musl", registration.Toolchain.RustTriple)
	assert.Equal(t, []string{"warnings"}, registration.Toolchain.DenyLints)
}

func TestResolveCommandUnknownAttribute(t *testing.T) {
	decl := `
[toolchain]
bogus = true
`
	path := filepath.Join(t.TempDir(), "rust_toolchain.toml")
	require.NoError(t, os.WriteFile(path, []byte(decl), 0644))

	_, err := runCommand(t, "toolchain", "resolve", "--file", path)
	require.Error(t, err)
}
