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
	LinuxRustFlags     = []string{}
	LinuxRustLinkFlags = []string{
		"-fuse-ld=lld",
	}
	linuxArm64Rustflags = []string{}
	linuxArm64Linkflags = []string{}
	linuxX8664Rustflags = []string{}
	linuxX8664Linkflags = []string{}
)

func init() {
	registerToolchainFactory(platform.Linux, platform.Arm64, linuxArm64ToolchainFactory)
	registerToolchainFactory(platform.Linux, platform.X86_64, linuxX8664ToolchainFactory)
}

type toolchainLinux struct {
	toolchain64Bit
}

func (toolchainLinux) ToolchainRustFlags() []string {
	return LinuxRustFlags
}

func (toolchainLinux) ToolchainLinkFlags() []string {
	return LinuxRustLinkFlags
}

type toolchainLinuxArm64 struct {
	toolchainLinux
}

type toolchainLinuxX8664 struct {
	toolchainLinux
}

func (t *toolchainLinuxArm64) RustTriple() string {
	return "aarch64-unknown-linux-gnu"
}

func (t *toolchainLinuxX8664) RustTriple() string {
	return "x86_64-unknown-linux-gnu"
}

func (t *toolchainLinuxArm64) ToolchainRustFlags() []string {
	return append(t.toolchainLinux.ToolchainRustFlags(), linuxArm64Rustflags...)
}

func (t *toolchainLinuxArm64) ToolchainLinkFlags() []string {
	return append(t.toolchainLinux.ToolchainLinkFlags(), linuxArm64Linkflags...)
}

func (t *toolchainLinuxX8664) ToolchainRustFlags() []string {
	return append(t.toolchainLinux.ToolchainRustFlags(), linuxX8664Rustflags...)
}

func (t *toolchainLinuxX8664) ToolchainLinkFlags() []string {
	return append(t.toolchainLinux.ToolchainLinkFlags(), linuxX8664Linkflags...)
}

func linuxArm64ToolchainFactory(target platform.Target) Toolchain {
	return toolchainLinuxArm64Singleton
}

func linuxX8664ToolchainFactory(target platform.Target) Toolchain {
	return toolchainLinuxX8664Singleton
}

var toolchainLinuxArm64Singleton Toolchain = &toolchainLinuxArm64{}
var toolchainLinuxX8664Singleton Toolchain = &toolchainLinuxX8664{}
