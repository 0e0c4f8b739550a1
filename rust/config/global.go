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

package config

import (
	"os"
	"path"

	"ferrite/platform"
)

var (
	RustDefaultVersion = "1.78.0"
	RustDefaultBase    = "prebuilts/rust"
	DefaultEdition     = "2021"
	Stdlibs            = []string{
		"libstd",
		"libtest",
	}

	// Mapping between internal arch types and std::env constants. Required
	// as Rust uses aarch64 where the build system uses arm64.
	StdEnvArch = map[platform.ArchType]string{
		platform.Arm64:  "aarch64",
		platform.X86_64: "x86_64",
	}

	GlobalRustcFlags = []string{
		"-C relocation-model=pic",
	}
)

// RustBase returns the root of the Rust prebuilt toolchain distribution,
// honoring the FERRITE_RUST_BASE environment override.
func RustBase() string {
	if override := os.Getenv("FERRITE_RUST_BASE"); override != "" {
		return override
	}
	return RustDefaultBase
}

// RustVersion returns the Rust toolchain version to configure, honoring the
// FERRITE_RUST_VERSION environment override.
func RustVersion() string {
	if override := os.Getenv("FERRITE_RUST_VERSION"); override != "" {
		return override
	}
	return RustDefaultVersion
}

// RustPath returns the versioned toolchain directory for the given host
// target, e.g. "prebuilts/rust/linux_x86_64/1.78.0".
func RustPath(host platform.Target) string {
	return path.Join(RustBase(), host.String(), RustVersion())
}

// RustBin returns the bin directory of the toolchain distribution for the
// given host target. Tool handles that the caller does not override default
// to binaries in this directory.
func RustBin(host platform.Target) string {
	return path.Join(RustPath(host), "bin")
}

// RustTools returns the directory holding the build system's helper tools
// (action runners, the failure filter, the flag concatenation tool and
// friends) for the given host target.
func RustTools(host platform.Target) string {
	return path.Join(RustPath(host), "tools")
}
