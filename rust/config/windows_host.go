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
	WindowsRustFlags     = []string{}
	WindowsRustLinkFlags = []string{}

	windowsArm64Rustflags = []string{}
	windowsArm64Linkflags = []string{}
	windowsX8664Rustflags = []string{}
	windowsX8664Linkflags = []string{}
)

func init() {
	registerToolchainFactory(platform.Windows, platform.Arm64, windowsArm64ToolchainFactory)
	registerToolchainFactory(platform.Windows, platform.X86_64, windowsX8664ToolchainFactory)
}

type toolchainWindows struct {
	toolchain64Bit
}

type toolchainWindowsArm64 struct {
	toolchainWindows
}

type toolchainWindowsX8664 struct {
	toolchainWindows
}

func (t *toolchainWindowsArm64) RustTriple() string {
	return "aarch64-pc-windows-msvc"
}

func (t *toolchainWindowsX8664) RustTriple() string {
	return "x86_64-pc-windows-msvc"
}

func (t *toolchainWindows) ExecutableSuffix() string {
	return ".exe"
}

func (t *toolchainWindows) SharedLibSuffix() string {
	return ".dll"
}

func (t *toolchainWindows) StaticLibSuffix() string {
	return ".lib"
}

func (t *toolchainWindows) DylibSuffix() string {
	return ".dll"
}

func (t *toolchainWindows) ProcMacroSuffix() string {
	return ".dll"
}

func (t *toolchainWindows) ToolchainRustFlags() []string {
	return WindowsRustFlags
}

func (t *toolchainWindows) ToolchainLinkFlags() []string {
	return WindowsRustLinkFlags
}

func (t *toolchainWindowsArm64) ToolchainRustFlags() []string {
	return append(t.toolchainWindows.ToolchainRustFlags(), windowsArm64Rustflags...)
}

func (t *toolchainWindowsArm64) ToolchainLinkFlags() []string {
	return append(t.toolchainWindows.ToolchainLinkFlags(), windowsArm64Linkflags...)
}

func (t *toolchainWindowsX8664) ToolchainRustFlags() []string {
	return append(t.toolchainWindows.ToolchainRustFlags(), windowsX8664Rustflags...)
}

func (t *toolchainWindowsX8664) ToolchainLinkFlags() []string {
	return append(t.toolchainWindows.ToolchainLinkFlags(), windowsX8664Linkflags...)
}

func windowsArm64ToolchainFactory(target platform.Target) Toolchain {
	return toolchainWindowsArm64Singleton
}

func windowsX8664ToolchainFactory(target platform.Target) Toolchain {
	return toolchainWindowsX8664Singleton
}

var toolchainWindowsArm64Singleton Toolchain = &toolchainWindowsArm64{}
var toolchainWindowsX8664Singleton Toolchain = &toolchainWindowsX8664{}
