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
	"ferrite/platform"
)

var (
	DarwinRustFlags     = []string{}
	DarwinRustLinkFlags = []string{}

	darwinArm64Rustflags = []string{}
	darwinArm64Linkflags = []string{}
	darwinX8664Rustflags = []string{}
	darwinX8664Linkflags = []string{}
)

func init() {
	registerToolchainFactory(platform.Darwin, platform.Arm64, darwinArm64ToolchainFactory)
	registerToolchainFactory(platform.Darwin, platform.X86_64, darwinX8664ToolchainFactory)
}

type toolchainDarwin struct {
	toolchain64Bit
}

type toolchainDarwinArm64 struct {
	toolchainDarwin
}

type toolchainDarwinX8664 struct {
	toolchainDarwin
}

func (t *toolchainDarwinArm64) RustTriple() string {
	return "aarch64-apple-darwin"
}

func (t *toolchainDarwinX8664) RustTriple() string {
	return "x86_64-apple-darwin"
}

func (t *toolchainDarwin) SharedLibSuffix() string {
	return ".dylib"
}

func (t *toolchainDarwin) DylibSuffix() string {
	return ".dylib"
}

func (t *toolchainDarwin) ProcMacroSuffix() string {
	return ".dylib"
}

func (t *toolchainDarwin) ToolchainRustFlags() []string {
	return DarwinRustFlags
}

func (t *toolchainDarwin) ToolchainLinkFlags() []string {
	return DarwinRustLinkFlags
}

func (t *toolchainDarwinArm64) ToolchainRustFlags() []string {
	return append(t.toolchainDarwin.ToolchainRustFlags(), darwinArm64Rustflags...)
}

func (t *toolchainDarwinArm64) ToolchainLinkFlags() []string {
	return append(t.toolchainDarwin.ToolchainLinkFlags(), darwinArm64Linkflags...)
}

func (t *toolchainDarwinX8664) ToolchainRustFlags() []string {
	return append(t.toolchainDarwin.ToolchainRustFlags(), darwinX8664Rustflags...)
}

func (t *toolchainDarwinX8664) ToolchainLinkFlags() []string {
	return append(t.toolchainDarwin.ToolchainLinkFlags(), darwinX8664Linkflags...)
}

func darwinArm64ToolchainFactory(target platform.Target) Toolchain {
	return toolchainDarwinArm64Singleton
}

func darwinX8664ToolchainFactory(target platform.Target) Toolchain {
	return toolchainDarwinX8664Singleton
}

var toolchainDarwinArm64Singleton Toolchain = &toolchainDarwinArm64{}
var toolchainDarwinX8664Singleton Toolchain = &toolchainDarwinX8664{}
