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
	"fmt"

	"ferrite/platform"
)

// Toolchain describes the per-target portion of a Rust toolchain
// configuration: the target triple and the flags and artifact suffixes that
// depend on the (OS, architecture) pair.
type Toolchain interface {
	RustTriple() string
	ToolchainRustFlags() []string
	ToolchainLinkFlags() []string

	SharedLibSuffix() string
	StaticLibSuffix() string
	RlibSuffix() string
	DylibSuffix() string
	ProcMacroSuffix() string
	ExecutableSuffix() string

	Is64Bit() bool
}

type toolchainBase struct {
}

func (toolchainBase) ToolchainRustFlags() []string {
	return nil
}

func (toolchainBase) ToolchainLinkFlags() []string {
	return nil
}

func (toolchainBase) ExecutableSuffix() string {
	return ""
}

func (toolchainBase) SharedLibSuffix() string {
	return ".so"
}

func (toolchainBase) StaticLibSuffix() string {
	return ".a"
}

func (toolchainBase) RlibSuffix() string {
	return ".rlib"
}

func (toolchainBase) DylibSuffix() string {
	return ".so"
}

func (toolchainBase) ProcMacroSuffix() string {
	return ".so"
}

type toolchain64Bit struct {
	toolchainBase
}

func (toolchain64Bit) Is64Bit() bool {
	return true
}

type toolchainFactory func(target platform.Target) Toolchain

var toolchainFactories = make(map[platform.OsType]map[platform.ArchType]toolchainFactory)

func registerToolchainFactory(os platform.OsType, arch platform.ArchType, factory toolchainFactory) {
	if toolchainFactories[os] == nil {
		toolchainFactories[os] = make(map[platform.ArchType]toolchainFactory)
	}
	toolchainFactories[os][arch] = factory
}

// FindToolchain returns the Toolchain for the given OS and architecture. An
// unregistered pair is a configuration error; there is no default toolchain
// to fall back to.
func FindToolchain(os platform.OsType, arch platform.ArchType) (Toolchain, error) {
	factory := toolchainFactories[os][arch]
	if factory == nil {
		return nil, fmt.Errorf("no rust toolchain registered for %s/%s", os, arch)
	}
	return factory(platform.Target{Os: os, Arch: arch}), nil
}

// RustTripleFor returns the target triple for the given OS and architecture,
// or an error if the pair has no registered toolchain.
func RustTripleFor(os platform.OsType, arch platform.ArchType) (string, error) {
	toolchain, err := FindToolchain(os, arch)
	if err != nil {
		return "", err
	}
	return toolchain.RustTriple(), nil
}
